// seed crea una tienda de demostración con su usuario admin y un catálogo
// inicial de productos. Pensado para entornos de desarrollo.
//
// Uso: go run ./cmd/seed
// Variables: las mismas de la API (DATABASE_URL o DB_*, JWT_SECRET) más
// SEED_EMAIL y SEED_PASSWORD (por defecto demo@ventapos.local / demo123).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ventapos-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	email := envOr("SEED_EMAIL", "demo@ventapos.local")
	password := envOr("SEED_PASSWORD", "demo123")

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("el usuario %s ya existe (tenant %d), nada que hacer\n", email, existing.TenantID)
		return
	}

	now := time.Now()
	tenant := &entity.Tenant{
		Name:               "Tienda Demo",
		Email:              email,
		Plan:               entity.PlanTrial,
		SubscriptionStatus: entity.SubscriptionTrial,
		TrialEndsAt:        now.Add(entity.TrialDays * 24 * time.Hour),
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := tenantRepo.Create(tenant); err != nil {
		fmt.Fprintf(os.Stderr, "crear tienda: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}
	user := &entity.User{
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin Demo",
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}

	lowAlert := int64(3)
	products := []*entity.Product{
		{Barcode: "7501000111110", Name: "Agua mineral 600ml", Price: decimal.NewFromFloat(1.50), Cost: decimal.NewFromFloat(0.80), Stock: 48, Category: "bebidas"},
		{Barcode: "7501000222221", Name: "Café molido 500g", Price: decimal.NewFromFloat(6.90), Cost: decimal.NewFromFloat(4.20), Stock: 20, Category: "abarrotes"},
		{Barcode: "7501000333332", Name: "Pan dulce", Price: decimal.NewFromFloat(0.75), Cost: decimal.NewFromFloat(0.30), Stock: 35, Category: "panadería"},
		{Barcode: "7501000444443", Name: "Azúcar 1kg", Price: decimal.NewFromFloat(2.10), Cost: decimal.NewFromFloat(1.40), Stock: 15, Category: "abarrotes", LowStockAlert: &lowAlert},
	}
	for _, p := range products {
		p.TenantID = tenant.ID
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %q: %v\n", p.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("tienda demo creada: tenant %d, usuario %s (password %s), %d productos\n",
		tenant.ID, email, password, len(products))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
