package service

import (
	"context"
	"fmt"
	"time"

	"shopbot/internal/domain"
	"shopbot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService exposes the read-mostly product catalog and its one-time
// seeding.
type CatalogService struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(products repository.ProductRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		logger:   logger,
	}
}

// ListActive returns the active products in insertion order.
func (s *CatalogService) ListActive(ctx context.Context) ([]*domain.Product, error) {
	return s.products.ListActive(ctx)
}

// Get returns a single product. Callers must treat
// repository.ErrProductNotFound as "show not-found message", not a crash.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Seed inserts the fixed product list on first startup. The count guard
// makes it idempotent: a non-empty catalog is never touched.
func (s *CatalogService) Seed(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}

	if count > 0 {
		s.logger.Info("Catalog already seeded", zap.Int("products", count))
		return nil
	}

	for _, p := range seedProducts() {
		if err := s.products.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	s.logger.Info("Catalog seeded", zap.Int("products", len(seedProducts())))
	return nil
}

func seedProducts() []*domain.Product {
	now := time.Now()
	return []*domain.Product{
		{
			ID:          uuid.New(),
			Name:        "Товар 1",
			Description: "Описание товара 1",
			Price:       500,
			PhotoURL:    "https://via.placeholder.com/300x200.png?text=Товар+1",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "Товар 2",
			Description: "Описание товара 2",
			Price:       750,
			PhotoURL:    "https://via.placeholder.com/300x200.png?text=Товар+2",
			IsActive:    true,
			CreatedAt:   now.Add(time.Millisecond),
		},
		{
			ID:          uuid.New(),
			Name:        "Товар 3",
			Description: "Описание товара 3",
			Price:       1200,
			PhotoURL:    "https://via.placeholder.com/300x200.png?text=Товар+3",
			IsActive:    true,
			CreatedAt:   now.Add(2 * time.Millisecond),
		},
	}
}
