package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dfranca/storefront/internal/domain"
)

func validProduct() *domain.Product {
	return &domain.Product{
		ID:          uuid.New(),
		Name:        "Keyboard",
		Description: "Tenkeyless mechanical keyboard",
		Price:       249.90,
	}
}

func TestProduct_ValidateOK(t *testing.T) {
	p := validProduct()

	assert.Empty(t, p.Validate())
	assert.True(t, p.IsValid())
}

func TestProduct_ValidateSingleViolation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Product)
		message string
	}{
		{
			name:    "empty id",
			mutate:  func(p *domain.Product) { p.ID = uuid.Nil },
			message: "Product Id could not be empty.",
		},
		{
			name:    "empty name",
			mutate:  func(p *domain.Product) { p.Name = "" },
			message: "Product Name could not be empty.",
		},
		{
			name:    "empty description",
			mutate:  func(p *domain.Product) { p.Description = "" },
			message: "Product Description could not be empty.",
		},
		{
			name:    "zero price",
			mutate:  func(p *domain.Product) { p.Price = 0 },
			message: "Price must be greather than zero.",
		},
		{
			name:    "negative price",
			mutate:  func(p *domain.Product) { p.Price = -1 },
			message: "Price must be greather than zero.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(p)

			assert.Equal(t, []string{tc.message}, p.Validate())
			assert.False(t, p.IsValid())
		})
	}
}

func TestProduct_ValidateTwoViolationsInRuleOrder(t *testing.T) {
	p := validProduct()
	p.Name = ""
	p.Price = 0

	assert.Equal(t, []string{
		"Product Name could not be empty.",
		"Price must be greather than zero.",
	}, p.Validate())
}

func TestProductModels(t *testing.T) {
	a := validProduct()
	b := validProduct()
	b.Name = "Mouse"

	models := domain.ProductModels([]domain.Product{*a, *b})

	assert.Len(t, models, 2)
	assert.Equal(t, a.Name, models[0].Name)
	assert.Equal(t, b.Name, models[1].Name)

	assert.Empty(t, domain.ProductModels(nil))
}
