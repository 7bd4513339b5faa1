package domain

import "github.com/google/uuid"

// UserModel is the externally-facing shape of a user. Password is the
// transient plaintext carried on registration requests only; the stored hash
// is never serialized outward.
type UserModel struct {
	ID           uuid.UUID `json:"id"`
	UserName     string    `json:"userName"`
	PasswordHash string    `json:"-"`
	Roles        string    `json:"roles"`
	Password     string    `json:"password,omitempty"`
}

// ProductModel is the externally-facing shape of a product.
type ProductModel struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

// ProductModels projects a slice of entities to wire models, preserving order.
func ProductModels(products []Product) []ProductModel {
	models := make([]ProductModel, 0, len(products))
	for i := range products {
		models = append(models, products[i].Model())
	}
	return models
}
