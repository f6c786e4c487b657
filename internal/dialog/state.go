package dialog

import "github.com/google/uuid"

// Step marks the question an in-progress order is waiting on. The flow is
// strictly linear: date, then time, then payment method.
type Step int

const (
	StepAwaitingDate Step = iota + 1
	StepAwaitingTime
	StepAwaitingPayment
)

func (s Step) String() string {
	switch s {
	case StepAwaitingDate:
		return "awaiting_date"
	case StepAwaitingTime:
		return "awaiting_time"
	case StepAwaitingPayment:
		return "awaiting_payment"
	default:
		return "unknown"
	}
}

// Conversation is the ephemeral per-user state of one in-progress order.
// It exists from the moment a user taps "buy" until the order is committed
// or a new flow start overwrites it.
type Conversation struct {
	ProductID uuid.UUID
	Date      string
	Time      string
	Step      Step
}
