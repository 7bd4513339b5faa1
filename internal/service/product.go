package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dfranca/storefront/internal/domain"
	"github.com/dfranca/storefront/internal/event"
	"github.com/dfranca/storefront/internal/notification"
	"github.com/dfranca/storefront/internal/storage"
)

// ProductService orchestrates the product CRUD flows.
type ProductService struct {
	products  storage.ProductRepository
	publisher event.Publisher
	logger    *zap.Logger
}

func NewProductService(
	products storage.ProductRepository,
	publisher event.Publisher,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products:  products,
		publisher: publisher,
		logger:    logger,
	}
}

// Create stores a new product unless one with the same id or name exists and
// the entity passes validation.
func (s *ProductService) Create(ctx context.Context, n *notification.Notification, model domain.ProductModel) {
	existing, err := s.products.GetByOr(ctx, model.ID, model.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("failed to add product",
			zap.String("name", model.Name), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to add product %s.", model.Name), notification.Unexpected)
		return
	}
	if existing != nil {
		n.Add(fmt.Sprintf("Product %s or Id %s already exists.", model.Name, model.ID), notification.Expected)
		return
	}

	product := domain.NewProductFromModel(model)
	if violations := product.Validate(); len(violations) > 0 {
		n.AddMessages(violations)
		return
	}

	if err := s.products.Add(ctx, product); err != nil {
		s.logger.Error("failed to add product",
			zap.String("name", model.Name), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to add product %s.", model.Name), notification.Unexpected)
		return
	}

	s.publisher.Publish(ctx, event.New(event.TypeProductCreated, product.ID.String()))
}

// Update rebuilds the product from the incoming model and persists it when
// the stored product exists and the rebuilt entity is valid.
func (s *ProductService) Update(ctx context.Context, n *notification.Notification, model domain.ProductModel) {
	_, err := s.products.GetBy(ctx, model.ID)
	if errors.Is(err, domain.ErrNotFound) {
		n.Add(fmt.Sprintf("Product not found %s", model.ID), notification.NotFound)
		return
	}
	if err != nil {
		s.logger.Error("failed to update product",
			zap.String("name", model.Name), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to update product %s.", model.Name), notification.Unexpected)
		return
	}

	product := domain.NewProductFromModel(model)
	if violations := product.Validate(); len(violations) > 0 {
		n.AddMessages(violations)
		return
	}

	if err := s.products.Update(ctx, product); err != nil {
		s.logger.Error("failed to update product",
			zap.String("name", model.Name), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to update product %s.", model.Name), notification.Unexpected)
		return
	}

	s.publisher.Publish(ctx, event.New(event.TypeProductUpdated, product.ID.String()))
}

// Delete removes the product; the storage layer reports whether a row was
// actually removed.
func (s *ProductService) Delete(ctx context.Context, n *notification.Notification, id uuid.UUID) {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete product",
			zap.String("id", id.String()), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to delete product %s.", id), notification.Unexpected)
		return
	}
	if !deleted {
		n.Add(fmt.Sprintf("Product with ID %s not found.", id), notification.NotFound)
		return
	}

	s.publisher.Publish(ctx, event.New(event.TypeProductDeleted, id.String()))
}

// GetByID returns the product's wire model, or nil when it does not exist.
func (s *ProductService) GetByID(ctx context.Context, n *notification.Notification, id uuid.UUID) *domain.ProductModel {
	product, err := s.products.GetBy(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		n.Add(fmt.Sprintf("Product with ID %s not found.", id), notification.NotFound)
		return nil
	}
	if err != nil {
		s.logger.Error("failed to get product",
			zap.String("id", id.String()), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to get product %s.", id), notification.Unexpected)
		return nil
	}

	model := product.Model()
	return &model
}

// GetAll returns every product projected to its wire model; on failure the
// result is an empty sequence.
func (s *ProductService) GetAll(ctx context.Context, n *notification.Notification) []domain.ProductModel {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get all products", zap.Error(err))
		n.Add("Failed to get all products.", notification.Unexpected)
		return []domain.ProductModel{}
	}

	return domain.ProductModels(products)
}
