package bot

import (
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/raine/telegram-compliment-bot/internal/compliments"
)

// showCompliment sends a random compliment for the session's current
// category filter.
func (b *Bot) showCompliment(session *UserSession) {
	entry, ok := session.compliments.RandomEntry(session.category, b.rng)
	if !ok {
		session.reply(MsgNoCompliments)
		return
	}

	keyboard := categoryKeyboard(session.compliments.Categories(), session.category)
	session.replyWithKeyboard(keyboard, MsgComplimentFmt,
		escapeMarkdown(entry), compliments.CategoryEmoji(session.category))
}

// resolveCategory maps user input to a known category filter. Stored
// category names are matched as typed first, then after normalization.
func resolveCategory(store *compliments.Store, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if store.Has(raw) {
		return raw, true
	}
	name := compliments.NormalizeCategory(raw)
	if name == compliments.AllCategories || (name != "" && store.Has(name)) {
		return name, true
	}
	return "", false
}

// selectCategory sets the session's category filter. It replies and
// returns false when the category is unknown.
func (b *Bot) selectCategory(session *UserSession, raw string) bool {
	category, ok := resolveCategory(session.compliments, raw)
	if !ok {
		available := lo.Map(session.compliments.Categories(), func(c string, _ int) string {
			return escapeMarkdown(c)
		})
		session.reply(MsgUnknownCategory, escapeMarkdown(raw), strings.Join(append([]string{"all"}, available...), ", "))
		return false
	}
	session.category = category
	log.Info().Int64("userId", session.userId).Str("category", category).Msg("category selected")
	return true
}

// handleCategoryCommand handles /category - pick a filter by name, or
// show the category chips when no name is given.
func (b *Bot) handleCategoryCommand(session *UserSession, args string) {
	if args == "" {
		keyboard := categoryKeyboard(session.compliments.Categories(), session.category)
		session.replyWithKeyboard(keyboard, MsgChooseCategory)
		return
	}
	if b.selectCategory(session, args) {
		session.reply(MsgCategorySelected, escapeMarkdown(categoryLabel(session.category)))
	}
}

// handleCategoriesCommand handles /categories - list categories with
// their entry counts.
func (b *Bot) handleCategoriesCommand(session *UserSession) {
	categories := session.compliments.Categories()
	if len(categories) == 0 {
		session.reply(MsgNoCompliments)
		return
	}

	lines := []string{MsgCategoriesHeader}
	for _, c := range categories {
		lines = append(lines, formatReplyText(MsgCategoryLineFmt,
			escapeMarkdown(categoryLabel(c)),
			complimentCount(session.compliments.Count(c))))
	}
	session.reply("%s", strings.Join(lines, "\n"))
}

// handleCategoryChip handles a tap on a category chip.
func (b *Bot) handleCategoryChip(session *UserSession, query *tgbotapi.CallbackQuery) {
	category := strings.TrimPrefix(query.Data, callbackCategoryPrefix)
	if category != compliments.AllCategories && !session.compliments.Has(category) {
		log.Warn().Str("category", category).Int64("userId", session.userId).Msg("chip for unknown category")
		return
	}
	session.category = category

	if query.Message == nil || query.Message.Chat == nil {
		return
	}
	keyboard := categoryKeyboard(session.compliments.Categories(), category)
	edit := tgbotapi.NewEditMessageReplyMarkup(query.Message.Chat.ID, query.Message.MessageID, keyboard)
	if _, err := b.tg.Request(edit); err != nil {
		log.Debug().Err(err).Int64("userId", session.userId).Msg("failed to update category chips")
	}
}

// handleAddCommand handles /add. "/add category | text" adds directly,
// "/add category" asks for the text and a bare "/add" asks for both.
func (b *Bot) handleAddCommand(session *UserSession, args string) {
	if args == "" {
		session.pendingAdd = &pendingAdd{}
		session.reply(MsgAddPromptCategory)
		return
	}

	rawCategory, text, hasText := strings.Cut(args, "|")
	if !hasText {
		category := compliments.NormalizeCategory(rawCategory)
		if category == "" {
			session.reply(MsgEmptyCategory)
			return
		}
		session.pendingAdd = &pendingAdd{category: category}
		session.reply(MsgAddPromptText, escapeMarkdown(category))
		return
	}

	b.addCompliment(session, rawCategory, text)
}

// handlePendingAdd consumes text input while an add prompt is open.
// Returns true if the message was handled.
func (b *Bot) handlePendingAdd(session *UserSession, text string) bool {
	pending := session.pendingAdd
	if pending == nil {
		return false
	}

	if pending.category == "" {
		category := compliments.NormalizeCategory(text)
		if category == "" {
			session.reply(MsgEmptyCategory)
			return true
		}
		pending.category = category
		session.reply(MsgAddPromptText, escapeMarkdown(category))
		return true
	}

	b.addCompliment(session, pending.category, text)
	return true
}

// addCompliment validates and adds an entry, persists the store and shows
// a compliment from the category it went into. Validation failures leave
// the store untouched and reply with a short status.
func (b *Bot) addCompliment(session *UserSession, rawCategory, text string) {
	next, category, err := session.compliments.AddEntry(rawCategory, text)
	if err != nil {
		session.reply("%s", addStatusMessage(err))
		return
	}

	session.compliments = next
	session.saveCompliments()
	session.category = category
	session.pendingAdd = nil

	log.Info().
		Int64("userId", session.userId).
		Str("category", category).
		Int("count", next.Count(category)).
		Msg("compliment added")

	session.reply(MsgAdded)
	b.showCompliment(session)
}

func addStatusMessage(err error) string {
	switch {
	case errors.Is(err, compliments.ErrEmptyCategory):
		return MsgEmptyCategory
	case errors.Is(err, compliments.ErrEmptyText):
		return MsgEmptyText
	default:
		return formatReplyText(MsgUnexpectedErr, err)
	}
}

// handleResetCommand handles /reset - drop the user's compliments and go
// back to the starter set.
func (b *Bot) handleResetCommand(session *UserSession) {
	if session.storage != nil {
		if err := compliments.Reset(session.storage); err != nil {
			log.Warn().Err(err).Int64("userId", session.userId).Msg("compliments not reset in storage")
		}
	}

	session.compliments = compliments.Default()
	session.category = compliments.AllCategories
	session.pendingAdd = nil

	log.Info().Int64("userId", session.userId).Msg("compliments reset")
	session.reply(MsgReset)
}
