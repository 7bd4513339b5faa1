package domain

import "github.com/google/uuid"

// Product is the catalog aggregate. Like User, instances are transient
// value-like objects that are validated before any persistence.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
}

// NewProductFromModel builds a Product from its wire model.
func NewProductFromModel(m ProductModel) *Product {
	return &Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
	}
}

// Model projects the entity to its wire shape.
func (p *Product) Model() ProductModel {
	return ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// Validate runs the full rule list and returns every violation in
// declaration order.
func (p *Product) Validate() []string {
	return runRules([]rule{
		{func() bool { return p.ID != uuid.Nil }, "Product Id could not be empty."},
		{func() bool { return p.Name != "" }, "Product Name could not be empty."},
		{func() bool { return p.Description != "" }, "Product Description could not be empty."},
		{func() bool { return p.Price > 0 }, "Price must be greather than zero."},
	})
}

// IsValid reports whether Validate yields no violations.
func (p *Product) IsValid() bool {
	return len(p.Validate()) == 0
}
