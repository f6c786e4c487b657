package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"shopbot/internal/domain"
	"shopbot/internal/repository"

	"github.com/google/uuid"
)

// Mock repositories for testing

type mockProductRepository struct {
	mu       sync.Mutex
	products map[uuid.UUID]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[uuid.UUID]*domain.Product),
	}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *product
	m.products[product.ID] = &copy
	return nil
}

func (m *mockProductRepository) ListActive(ctx context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	active := []*domain.Product{}
	for _, p := range m.products {
		if p.IsActive {
			copy := *p
			active = append(active, &copy)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	return active, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copy := *p
	return &copy, nil
}

func (m *mockProductRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.IsActive = false
	return nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products), nil
}

type mockOrderRepository struct {
	mu     sync.Mutex
	orders []*domain.Order
	nextID int64
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{nextID: 1}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *order
	copy.ID = m.nextID
	m.nextID++
	m.orders = append(m.orders, &copy)
	return copy.ID, nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			copy := *o
			return &copy, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *mockOrderRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recent := []*domain.Order{}
	for i := len(m.orders) - 1; i >= 0 && len(recent) < limit; i-- {
		copy := *m.orders[i]
		recent = append(recent, &copy)
	}
	return recent, nil
}

func activeProduct(name string, price float64) *domain.Product {
	return &domain.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func testPaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: "card", Name: "Перевод на карту", Instructions: "Переведите сумму на карту 0000."},
		{ID: "cash", Name: "Наличные", Instructions: "Оплата при получении."},
	}
}
