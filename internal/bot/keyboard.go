package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/raine/telegram-compliment-bot/internal/compliments"
)

const (
	callbackCategoryPrefix = "cat:"
	callbackAnother        = "gen"

	// Telegram rejects callback data longer than 64 bytes.
	maxCallbackData = 64
	chipsPerRow     = 3
)

// categoryLabel is the chip text for a category filter.
func categoryLabel(category string) string {
	if category == compliments.AllCategories {
		return "All"
	}
	return compliments.CategoryLabel(category)
}

// categoryKeyboard renders one chip per category, "All" first, with the
// active one marked, followed by a button for another compliment. A stored
// category named "all" shares the "All" chip.
// Categories too long to fit in callback data are left out; /category
// still reaches them.
func categoryKeyboard(categories []string, active string) tgbotapi.InlineKeyboardMarkup {
	chips := append([]string{compliments.AllCategories}, lo.Without(categories, compliments.AllCategories)...)
	chips = lo.Filter(chips, func(c string, _ int) bool {
		return len(callbackCategoryPrefix)+len(c) <= maxCallbackData
	})

	buttons := lo.Map(chips, func(c string, _ int) tgbotapi.InlineKeyboardButton {
		label := categoryLabel(c)
		if c == active {
			label = "✓ " + label
		}
		return tgbotapi.NewInlineKeyboardButtonData(label, callbackCategoryPrefix+c)
	})

	rows := lo.Chunk(buttons, chipsPerRow)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✨ Another", callbackAnother),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
