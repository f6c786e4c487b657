package bot

import (
	"shopbot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// mainKeyboard is the persistent reply keyboard. Admins get one extra
// button; this is visibility gating only, the handlers check access again.
func mainKeyboard(isAdmin bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonCatalog),
			tgbotapi.NewKeyboardButton(buttonHelp),
		),
	}
	if isAdmin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonAdmin),
		))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

// inlineMenu renders abstract (label, token) pairs to an inline keyboard,
// one button per row.
func inlineMenu(items []service.MenuItem) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items))
	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(item.Label, item.Token),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
