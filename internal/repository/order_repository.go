package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopbot/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Order, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts one order row and returns the identifier assigned by the
// database. A single-row insert keeps the record atomic: either the full
// order is visible to readers or none of it is.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) (int64, error) {
	query := `
		INSERT INTO orders (user_id, username, product_id, product_name, amount,
			order_date, order_time, payment_method, payment_details, admin_contact,
			status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(
		ctx,
		query,
		order.UserID,
		order.Username,
		order.ProductID,
		order.ProductName,
		order.Amount,
		order.OrderDate,
		order.OrderTime,
		order.PaymentMethod,
		order.PaymentDetails,
		order.AdminContact,
		order.Status,
		order.CreatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	return id, nil
}

// FindByID retrieves an order by its identifier
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, user_id, username, product_id, product_name, amount,
			order_date, order_time, payment_method, payment_details, admin_contact,
			status, created_at
		FROM orders
		WHERE id = $1
	`

	order := &domain.Order{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Username,
		&order.ProductID,
		&order.ProductName,
		&order.Amount,
		&order.OrderDate,
		&order.OrderTime,
		&order.PaymentMethod,
		&order.PaymentDetails,
		&order.AdminContact,
		&order.Status,
		&order.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	return order, nil
}

// ListRecent returns the newest orders first, for the admin menu.
func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Order, error) {
	query := `
		SELECT id, user_id, username, product_id, product_name, amount,
			order_date, order_time, payment_method, payment_details, admin_contact,
			status, created_at
		FROM orders
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Username,
			&order.ProductID,
			&order.ProductName,
			&order.Amount,
			&order.OrderDate,
			&order.OrderTime,
			&order.PaymentMethod,
			&order.PaymentDetails,
			&order.AdminContact,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
