package service

import (
	"context"

	"shopbot/internal/domain"
	"shopbot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminService backs the restricted admin menu: viewing recent orders and
// deactivating catalog products. Access is checked by the transport via
// AccessChecker before any of these are called.
type AdminService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(orders repository.OrderRepository, products repository.ProductRepository, logger *zap.Logger) *AdminService {
	return &AdminService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// RecentOrders returns the newest orders, most recent first.
func (s *AdminService) RecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	return s.orders.ListRecent(ctx, limit)
}

// DeactivateProduct soft-deletes a product from the catalog. Orders that
// reference it are untouched.
func (s *AdminService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deactivated", zap.String("product_id", id.String()))
	return nil
}
