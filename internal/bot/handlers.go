package bot

import (
	"context"
	"fmt"
	"strings"

	"shopbot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgInternalError = "Что-то пошло не так. Попробуйте позже."
	msgAccessDenied  = "Доступ запрещён."
	msgHelp          = "Команды:\n/start — главное меню\n/help — помощь\n\nВыберите товар в каталоге, укажите дату и время заказа и способ оплаты."

	buttonCatalog = "🛍 Каталог"
	buttonHelp    = "ℹ️ Помощь"
	buttonAdmin   = "⚙️ Админка"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if msg.IsCommand() {
		return b.handleCommand(ctx, msg)
	}

	// Mid-flow, every text message is the answer to the current step's
	// question.
	reply, handled, err := b.flow.SubmitText(ctx, msg.From.ID, msg.Text)
	if err != nil {
		return err
	}
	if handled {
		b.sendReply(msg.Chat.ID, reply)
		return nil
	}

	switch msg.Text {
	case buttonCatalog:
		return b.sendCatalog(ctx, msg.Chat.ID)
	case buttonHelp:
		b.send(msg.Chat.ID, msgHelp)
		return nil
	case buttonAdmin:
		return b.sendAdminMenu(msg.Chat.ID, msg.From.ID, userHandle(msg.From))
	default:
		b.sendWelcome(msg.Chat.ID, msg.From)
		return nil
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		b.sendWelcome(msg.Chat.ID, msg.From)
	case "help":
		b.send(msg.Chat.ID, msgHelp)
	case "admin":
		return b.sendAdminMenu(msg.Chat.ID, msg.From.ID, userHandle(msg.From))
	default:
		b.send(msg.Chat.ID, "Не знаю такую команду. Наберите /help")
	}
	return nil
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	// Acknowledge the tap so the client stops showing a spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.Warn("Failed to answer callback query")
	}

	if cb.Message == nil {
		return nil
	}
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	token := cb.Data

	if productID, ok := service.ParseBuyToken(token); ok {
		reply, err := b.flow.StartOrder(ctx, userID, productID)
		if err != nil {
			return err
		}
		b.sendReply(chatID, reply)
		return nil
	}

	if methodID, ok := service.ParsePayToken(token); ok {
		reply, err := b.flow.SelectPayment(ctx, userID, userHandle(cb.From), methodID)
		if err != nil {
			return err
		}
		b.sendReply(chatID, reply)
		return nil
	}

	switch token {
	case service.TokenCatalog:
		return b.sendCatalog(ctx, chatID)
	case service.TokenAdminMenu:
		return b.sendAdminMenu(chatID, userID, userHandle(cb.From))
	case service.TokenAdminOrders:
		return b.sendAdminOrders(ctx, chatID, userID, userHandle(cb.From))
	case service.TokenAdminProducts:
		return b.sendAdminProducts(ctx, chatID, userID, userHandle(cb.From))
	}

	if productID, ok := service.ParseDeactivateToken(token); ok {
		if !b.access.IsAdmin(userID, userHandle(cb.From)) {
			b.send(chatID, msgAccessDenied)
			return nil
		}
		if err := b.admin.DeactivateProduct(ctx, productID); err != nil {
			return err
		}
		b.send(chatID, "Товар снят с продажи.")
		return nil
	}

	return nil
}

func (b *Bot) sendWelcome(chatID int64, from *tgbotapi.User) {
	msg := tgbotapi.NewMessage(chatID, "Добро пожаловать в магазин! Выберите действие:")
	msg.ReplyMarkup = mainKeyboard(b.access.IsAdmin(from.ID, userHandle(from)))
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send welcome")
	}
}

// sendCatalog lists the active products, one message per product with a
// buy button.
func (b *Bot) sendCatalog(ctx context.Context, chatID int64) error {
	products, err := b.catalog.ListActive(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		b.send(chatID, "Каталог пока пуст.")
		return nil
	}

	for _, p := range products {
		text := fmt.Sprintf("%s — %.2f ₽\n%s", p.Name, p.Price, p.Description)
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = inlineMenu([]service.MenuItem{
			{Label: "🛒 Купить", Token: service.BuyToken(p.ID)},
		})
		if _, err := b.api.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) sendAdminMenu(chatID, userID int64, username string) error {
	if !b.access.IsAdmin(userID, username) {
		b.send(chatID, msgAccessDenied)
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, "Админ-меню:")
	msg.ReplyMarkup = inlineMenu([]service.MenuItem{
		{Label: "📦 Последние заказы", Token: service.TokenAdminOrders},
		{Label: "🗂 Товары", Token: service.TokenAdminProducts},
	})
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendAdminOrders(ctx context.Context, chatID, userID int64, username string) error {
	if !b.access.IsAdmin(userID, username) {
		b.send(chatID, msgAccessDenied)
		return nil
	}

	orders, err := b.admin.RecentOrders(ctx, 10)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		b.send(chatID, "Заказов пока нет.")
		return nil
	}

	var sb strings.Builder
	sb.WriteString("Последние заказы:\n")
	for _, o := range orders {
		fmt.Fprintf(&sb, "\n№%d — %s, %.2f ₽, %s %s, %s (@%s)",
			o.ID, o.ProductName, o.Amount, o.OrderDate, o.OrderTime, o.PaymentMethod, o.Username)
	}
	b.send(chatID, sb.String())
	return nil
}

func (b *Bot) sendAdminProducts(ctx context.Context, chatID, userID int64, username string) error {
	if !b.access.IsAdmin(userID, username) {
		b.send(chatID, msgAccessDenied)
		return nil
	}

	products, err := b.catalog.ListActive(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		b.send(chatID, "Активных товаров нет.")
		return nil
	}

	for _, p := range products {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s — %.2f ₽", p.Name, p.Price))
		msg.ReplyMarkup = inlineMenu([]service.MenuItem{
			{Label: "🚫 Снять с продажи", Token: service.DeactivateToken(p.ID)},
		})
		if _, err := b.api.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

// userHandle prefers the public @username and falls back to the display
// name, mirroring what ends up on the order row.
func userHandle(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
