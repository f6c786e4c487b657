package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the status every order is created with. No status
// transition is exposed anywhere; the column exists for admin tooling.
const OrderStatusPending = "pending"

// Order is one completed purchase. Immutable once persisted: there is no
// update or cancel path. The product name, price and payment details are
// denormalized so the order survives catalog changes.
type Order struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	ProductID      uuid.UUID `json:"product_id" db:"product_id"`
	ProductName    string    `json:"product_name" db:"product_name"`
	Amount         float64   `json:"amount" db:"amount"`
	OrderDate      string    `json:"order_date" db:"order_date"`
	OrderTime      string    `json:"order_time" db:"order_time"`
	PaymentMethod  string    `json:"payment_method" db:"payment_method"`
	PaymentDetails string    `json:"payment_details" db:"payment_details"`
	AdminContact   string    `json:"admin_contact" db:"admin_contact"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
