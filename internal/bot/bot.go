package bot

import (
	"context"
	"sync"

	"shopbot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot is the Telegram transport. It receives updates over long polling,
// serializes them per user and routes them to the services. It holds no
// business state of its own.
type Bot struct {
	api     *tgbotapi.BotAPI
	flow    *service.FlowService
	catalog *service.CatalogService
	admin   *service.AdminService
	access  *service.AccessChecker
	logger  *zap.Logger

	// locks serializes update handling per user. Telegram delivers one
	// update at a time, but each update is handled on its own goroutine,
	// so two quick messages from the same user could otherwise interleave
	// mid-flow.
	locks sync.Map
}

// New authorizes against the Bot API and builds the transport.
func New(
	token string,
	flow *service.FlowService,
	catalog *service.CatalogService,
	admin *service.AdminService,
	access *service.AccessChecker,
	logger *zap.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.Info("Authorized on Telegram", zap.String("account", api.Self.UserName))

	return &Bot{
		api:     api,
		flow:    flow,
		catalog: catalog,
		admin:   admin,
		access:  access,
		logger:  logger,
	}, nil
}

// Run consumes updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.dispatch(ctx, update)
		}
	}
}

// dispatch handles a single update under the per-user lock. Panics and
// handler errors are caught here: the user gets a generic notice and the
// conversation state is left untouched so the same step can be retried.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	var (
		userID int64
		chatID int64
	)

	switch {
	case update.Message != nil && update.Message.From != nil:
		userID = update.Message.From.ID
		chatID = update.Message.Chat.ID
	case update.CallbackQuery != nil:
		userID = update.CallbackQuery.From.ID
		if update.CallbackQuery.Message != nil {
			chatID = update.CallbackQuery.Message.Chat.ID
		}
	default:
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic while handling update",
				zap.Any("panic", r),
				zap.Int64("user_id", userID),
			)
			b.send(chatID, msgInternalError)
		}
	}()

	mu := b.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	var err error
	if update.Message != nil {
		err = b.handleMessage(ctx, update.Message)
	} else {
		err = b.handleCallback(ctx, update.CallbackQuery)
	}

	if err != nil {
		b.logger.Error("Failed to handle update",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		b.send(chatID, msgInternalError)
	}
}

// userLock returns the mutex serializing updates for one user. Locks are
// never released from the map; the per-user footprint is one mutex.
func (b *Bot) userLock(userID int64) *sync.Mutex {
	v, _ := b.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func (b *Bot) send(chatID int64, text string) {
	if chatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

// sendReply renders an abstract service reply: plain text plus an optional
// inline menu.
func (b *Bot) sendReply(chatID int64, reply service.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Menu) > 0 {
		msg.ReplyMarkup = inlineMenu(reply.Menu)
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send reply", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}
