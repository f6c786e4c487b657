package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopbot/internal/dialog"
	"shopbot/internal/domain"
	"shopbot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Prompts and validation messages. Validation failures always re-prompt
// and never advance the conversation.
const (
	msgPromptDate  = "Введите дату заказа в формате ДД.ММ.ГГГГ, например 25.12.2025"
	msgBadDate     = "Неверная дата. Нужен формат ДД.ММ.ГГГГ, например 25.12.2025. Попробуйте ещё раз."
	msgPromptTime  = "Введите время в формате ЧЧ:ММ, например 18:30"
	msgBadTime     = "Неверное время. Нужен формат ЧЧ:ММ, например 18:30. Попробуйте ещё раз."
	msgPickPay     = "Выберите способ оплаты:"
	msgPayNotFound = "Способ оплаты не найден. Выберите один из вариантов ниже."
	msgNoProduct   = "Товар не найден."
)

// FlowService drives the order intake flow: a per-user linear state
// machine that collects a date, a time and a payment method, then commits
// exactly one order. All conversation state lives in the dialog store.
type FlowService struct {
	products      repository.ProductRepository
	orders        repository.OrderRepository
	conversations *dialog.Store
	payments      []domain.PaymentMethod
	adminContact  string
	logger        *zap.Logger
}

// NewFlowService creates a new instance of FlowService
func NewFlowService(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	conversations *dialog.Store,
	payments []domain.PaymentMethod,
	adminContact string,
	logger *zap.Logger,
) *FlowService {
	return &FlowService{
		products:      products,
		orders:        orders,
		conversations: conversations,
		payments:      payments,
		adminContact:  adminContact,
		logger:        logger,
	}
}

// StartOrder begins the flow for the given product. An in-progress
// conversation for the same user is discarded, matching the documented
// restart behavior. A missing or deactivated product yields a not-found
// reply and starts nothing.
func (s *FlowService) StartOrder(ctx context.Context, userID int64, productID uuid.UUID) (Reply, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return Reply{Text: msgNoProduct}, nil
		}
		return Reply{}, fmt.Errorf("failed to start order: %w", err)
	}

	if !product.IsActive {
		return Reply{Text: msgNoProduct}, nil
	}

	s.conversations.Start(userID, product.ID)

	s.logger.Info("Order flow started",
		zap.Int64("user_id", userID),
		zap.String("product_id", product.ID.String()),
	)

	return Reply{Text: fmt.Sprintf("Вы выбрали «%s» за %s.\n%s", product.Name, formatPrice(product.Price), msgPromptDate)}, nil
}

// SubmitText interprets a free-text message as the answer to the current
// step's question. The second return value is false when the user has no
// conversation in progress, so the transport can fall back to the menu.
func (s *FlowService) SubmitText(ctx context.Context, userID int64, text string) (Reply, bool, error) {
	conv, ok := s.conversations.Get(userID)
	if !ok {
		return Reply{}, false, nil
	}

	switch conv.Step {
	case dialog.StepAwaitingDate:
		if !ValidOrderDate(text) {
			return Reply{Text: msgBadDate}, true, nil
		}
		s.conversations.AdvanceDate(userID, text)
		return Reply{Text: msgPromptTime}, true, nil

	case dialog.StepAwaitingTime:
		if !ValidOrderTime(text) {
			return Reply{Text: msgBadTime}, true, nil
		}
		s.conversations.AdvanceTime(userID, text)
		return s.paymentMenu(), true, nil

	case dialog.StepAwaitingPayment:
		// Payment is chosen from the menu, not typed.
		return s.paymentMenu(), true, nil

	default:
		return Reply{}, false, nil
	}
}

// SelectPayment finishes the flow: it resolves the chosen payment method,
// commits the order and destroys the conversation. An unrecognized method
// reports not-found and leaves the conversation awaiting payment.
func (s *FlowService) SelectPayment(ctx context.Context, userID int64, username, methodID string) (Reply, error) {
	conv, ok := s.conversations.Get(userID)
	if !ok || conv.Step != dialog.StepAwaitingPayment {
		return Reply{Text: "Сначала выберите товар в каталоге."}, nil
	}

	method, ok := s.paymentByID(methodID)
	if !ok {
		reply := s.paymentMenu()
		reply.Text = msgPayNotFound
		return reply, nil
	}

	product, err := s.products.FindByID(ctx, conv.ProductID)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to load product for order: %w", err)
	}

	order := &domain.Order{
		UserID:         userID,
		Username:       username,
		ProductID:      product.ID,
		ProductName:    product.Name,
		Amount:         product.Price,
		OrderDate:      conv.Date,
		OrderTime:      conv.Time,
		PaymentMethod:  method.Name,
		PaymentDetails: method.Instructions,
		AdminContact:   s.adminContact,
		Status:         domain.OrderStatusPending,
		CreatedAt:      time.Now(),
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to commit order: %w", err)
	}

	s.conversations.Clear(userID)

	s.logger.Info("Order committed",
		zap.Int64("order_id", id),
		zap.Int64("user_id", userID),
		zap.String("product", product.Name),
	)

	return Reply{Text: confirmationText(id, order)}, nil
}

// paymentMenu presents the configured payment methods as a menu.
func (s *FlowService) paymentMenu() Reply {
	menu := make([]MenuItem, 0, len(s.payments))
	for _, m := range s.payments {
		menu = append(menu, MenuItem{Label: m.Name, Token: PayToken(m.ID)})
	}
	return Reply{Text: msgPickPay, Menu: menu}
}

func (s *FlowService) paymentByID(id string) (domain.PaymentMethod, bool) {
	for _, m := range s.payments {
		if m.ID == id {
			return m, true
		}
	}
	return domain.PaymentMethod{}, false
}

func confirmationText(id int64, order *domain.Order) string {
	return fmt.Sprintf(
		"✅ Заказ №%d оформлен!\n\n"+
			"Товар: %s\n"+
			"Сумма: %s\n"+
			"Дата: %s\n"+
			"Время: %s\n"+
			"Оплата: %s\n\n"+
			"%s\n\n"+
			"По всем вопросам: %s",
		id,
		order.ProductName,
		formatPrice(order.Amount),
		order.OrderDate,
		order.OrderTime,
		order.PaymentMethod,
		order.PaymentDetails,
		order.AdminContact,
	)
}
