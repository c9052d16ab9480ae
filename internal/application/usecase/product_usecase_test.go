package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/application/usecase"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/pkg/normalize"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de productos.
// Search reproduce la semántica del repositorio real: barcode exacto manda,
// luego substring contra nombre plegado o barcode en minúsculas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	nextID   int64
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	copied := *p
	r.products = append(r.products, &copied)
	return nil
}

func (r *fakeProductRepo) GetByID(tenantID, id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.TenantID == tenantID && p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.TenantID == p.TenantID && existing.ID == p.ID {
			copied := *p
			r.products[i] = &copied
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) ListByTenant(tenantID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(tenantID int64, foldedQuery, barcode string, limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.TenantID != tenantID {
			continue
		}
		switch {
		case barcode != "":
			if p.Barcode != barcode {
				continue
			}
		case foldedQuery != "":
			name := normalize.Fold(p.Name)
			code := strings.ToLower(p.Barcode)
			if !strings.Contains(name, foldedQuery) && !strings.Contains(code, foldedQuery) {
				continue
			}
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeProductRepo) DeductStock(tenantID, productID, qty int64) (bool, error) {
	for _, p := range r.products {
		if p.TenantID == tenantID && p.ID == productID {
			p.Stock -= qty
			if p.Stock < 0 {
				p.Stock = 0
			}
			return true, nil
		}
	}
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testTenant = int64(1)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func i64(n int64) *int64 { return &n }

func seedProduct(t *testing.T, uc *usecase.ProductUseCase, name, barcode string) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(testTenant, dto.CreateProductRequest{
		Barcode: barcode,
		Name:    name,
		Price:   dec("2.50"),
		Stock:   i64(10),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_StockCeroExplicitoEsValido(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	out, err := uc.Create(testTenant, dto.CreateProductRequest{
		Name:  "Hielo en bolsa",
		Price: dec("1.00"),
		Stock: i64(0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Stock)
}

func TestProductCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	cases := []dto.CreateProductRequest{
		{Price: dec("1.00"), Stock: i64(1)}, // sin name
		{Name: "Agua", Stock: i64(1)},       // sin price
		{Name: "Agua", Price: dec("1.00")},  // sin stock
	}
	for _, in := range cases {
		_, err := uc.Create(testTenant, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_FusionaSoloCamposPresentes(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	created := seedProduct(t, uc, "Café molido", "7501")

	newPrice := decimal.RequireFromString("7.25")
	out, err := uc.Update(testTenant, created.ID, dto.UpdateProductRequest{
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "Café molido", out.Name, "name no enviado no debe cambiar")
	assert.Equal(t, created.Stock, out.Stock, "stock no enviado no debe cambiar")
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt) || out.UpdatedAt.Equal(created.UpdatedAt))
}

func TestProductUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Update(testTenant, 99, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_OtroTenant_RetornaNotFound(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	created := seedProduct(t, uc, "Azúcar", "7502")

	_, err := uc.Update(testTenant+1, created.ID, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto de otra tienda debe ser invisible")
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSearch_IgnoraMayusculasYAcentos(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	seedProduct(t, uc, "Água Mineral", "7503")

	out, err := uc.Search(testTenant, "agua", "")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Água Mineral", out.Items[0].Name)
}

func TestProductSearch_BarcodeExactoTienePrioridad(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	seedProduct(t, uc, "Café molido", "111")
	seedProduct(t, uc, "Café en grano", "222")

	// Con barcode, el texto se ignora por completo.
	out, err := uc.Search(testTenant, "café", "222")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Café en grano", out.Items[0].Name)
}

func TestProductSearch_SinFiltros_ListadoAcotado(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	for range [60]struct{}{} {
		seedProduct(t, uc, "Caramelo", "")
	}

	out, err := uc.Search(testTenant, "", "")
	require.NoError(t, err)
	assert.Equal(t, usecase.SearchLimit, out.Total, "la búsqueda se acota a 50 resultados")
}
