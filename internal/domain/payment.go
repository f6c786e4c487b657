package domain

// PaymentMethod is a statically configured way to pay for an order.
// Methods are defined at process configuration time and never persisted
// on their own; an order keeps a copy of the name and instructions.
type PaymentMethod struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}
