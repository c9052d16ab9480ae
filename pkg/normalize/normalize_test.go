package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventapos-api/pkg/normalize"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Água", "agua"},
		{"CAFÉ", "cafe"},
		{"azúcar", "azucar"},
		{"PAN", "pan"},
		{"", ""},
		{"ñoño", "nono"}, // la tilde de la eñe también se pliega
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalize.Fold(c.in), "Fold(%q)", c.in)
	}
}

func TestFold_Idempotente(t *testing.T) {
	once := normalize.Fold("Água Mineral 600ml")
	assert.Equal(t, once, normalize.Fold(once))
}

func TestFold_Concurrente(t *testing.T) {
	done := make(chan struct{})
	for range [8]struct{}{} {
		go func() {
			defer func() { done <- struct{}{} }()
			for range [100]struct{}{} {
				_ = normalize.Fold("Café Colombiano Premium")
			}
		}()
	}
	for range [8]struct{}{} {
		<-done
	}
}
