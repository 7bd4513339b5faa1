package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/dfranca/storefront/internal/domain"
)

// ProductRepository implements storage.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool Pool
}

// NewProductRepository creates a new product repository.
func NewProductRepository(pool Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Add stores a new product.
func (r *ProductRepository) Add(ctx context.Context, product *domain.Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, description, price)
		VALUES ($1, $2, $3, $4)`,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
	)

	return mapError(err)
}

// GetBy retrieves a product by id.
func (r *ProductRepository) GetBy(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price
		FROM products WHERE id = $1`, id)

	return scanProduct(row)
}

// GetByOr retrieves a product matching either the id or the name.
func (r *ProductRepository) GetByOr(ctx context.Context, id uuid.UUID, name string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price
		FROM products WHERE name = $1 OR id = $2`, name, id)

	return scanProduct(row)
}

// Update overwrites an existing product's fields.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE products SET name = $2, description = $3, price = $4
		WHERE id = $1`,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
	)

	return mapError(err)
}

// Delete removes a product and reports whether a row was removed.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, mapError(err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetAll retrieves every product.
func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, price
		FROM products ORDER BY name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return products, nil
}

func scanProduct(row scannable) (*domain.Product, error) {
	var product domain.Product

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return &product, nil
}
