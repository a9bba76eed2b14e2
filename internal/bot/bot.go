package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/raine/telegram-compliment-bot/internal/compliments"
	"github.com/raine/telegram-compliment-bot/internal/storage"
)

// BotAPI defines the interface for Telegram bot API operations.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot is the main Telegram bot handler.
type Bot struct {
	tg    BotAPI
	state BotState
	store storage.Store
	rng   compliments.Rand
}

// NewBot creates a new Bot instance. store may be nil, in which case
// nothing is persisted and every user starts from the default compliments.
func NewBot(tg BotAPI, store storage.Store) *Bot {
	bot := &Bot{
		tg:    tg,
		store: store,
		rng:   compliments.DefaultRand,
	}
	bot.state = bot.NewBotState()
	return bot
}

// Shutdown stops all session workers.
func (b *Bot) Shutdown() {
	b.state.Shutdown()
}

// HandleUpdate is the main message router.
// It dispatches messages to the appropriate session worker for sequential processing.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	b.dispatchUpdate(ctx, update, false)
}

// handleUpdateSync is like HandleUpdate but waits for message processing to complete.
// Used in tests where we need synchronous behavior.
func (b *Bot) handleUpdateSync(ctx context.Context, update tgbotapi.Update) {
	b.dispatchUpdate(ctx, update, true)
}

func (b *Bot) dispatchUpdate(ctx context.Context, update tgbotapi.Update, sync bool) {
	var userId int64

	if update.CallbackQuery != nil {
		userId = update.CallbackQuery.From.ID
	} else if update.Message != nil && update.Message.From != nil {
		userId = update.Message.From.ID
	} else {
		return
	}

	session, err := b.state.getUserSession(userId)
	if err != nil {
		log.Error().Err(err).Send()
		return
	}

	send := func(msg SessionMessage) {
		if sync {
			session.SendSync(msg)
		} else {
			session.Send(msg)
		}
	}

	if update.CallbackQuery != nil {
		send(SessionMessage{
			Type:          "callback",
			Ctx:           ctx,
			CallbackQuery: update.CallbackQuery,
		})
		return
	}

	log.Info().Int64("userId", userId).Str("text", update.Message.Text).Msg("got message")
	send(SessionMessage{
		Type:    "text",
		Ctx:     ctx,
		Message: update.Message,
	})
}

// HandleSessionMessage implements MessageHandler interface.
// This is called by the session worker goroutine for sequential processing.
func (b *Bot) HandleSessionMessage(ctx context.Context, session *UserSession, msg SessionMessage) {
	switch msg.Type {
	case "callback":
		b.handleCallbackQuery(session, msg.CallbackQuery)
	case "text":
		b.handleTextMessage(session, msg.Message)
	}
}

// handleTextMessage processes text messages.
// Called from session worker - no locking needed.
func (b *Bot) handleTextMessage(session *UserSession, message *tgbotapi.Message) {
	if message.Text == "" {
		return
	}

	if !strings.HasPrefix(message.Text, "/") && b.handlePendingAdd(session, message.Text) {
		return
	}

	b.handleCommand(session, message)
}

// handleCommand processes bot commands.
// Called from session worker - no locking needed.
func (b *Bot) handleCommand(session *UserSession, message *tgbotapi.Message) {
	command, argsStr := parseCommand(message.Text)

	switch command {
	case "/start", "/help":
		session.reply(MsgHelp)
	case "/compliment":
		if argsStr != "" && !b.selectCategory(session, argsStr) {
			return
		}
		b.showCompliment(session)
	case "/category":
		b.handleCategoryCommand(session, argsStr)
	case "/categories":
		b.handleCategoriesCommand(session)
	case "/add":
		b.handleAddCommand(session, argsStr)
	case "/cancel":
		if session.pendingAdd == nil {
			session.reply(MsgNothingToCancel)
			return
		}
		session.pendingAdd = nil
		session.reply(MsgAddCancelled)
	case "/reset":
		b.handleResetCommand(session)
	case "/theme":
		b.handleThemeCommand(session)
	case "/version":
		session.reply(MsgVersionInfo, Version, BuildTime)
	default:
		session.reply(MsgStartPrompt)
	}
}

// handleCallbackQuery handles inline keyboard button presses.
// Called from session worker - no locking needed.
func (b *Bot) handleCallbackQuery(session *UserSession, query *tgbotapi.CallbackQuery) {
	// Answer the callback to remove the loading state
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.tg.Request(callback); err != nil {
		log.Debug().Err(err).Int64("userId", session.userId).Msg("failed to answer callback")
	}

	switch {
	case strings.HasPrefix(query.Data, callbackCategoryPrefix):
		b.handleCategoryChip(session, query)
	case query.Data == callbackAnother:
		b.showCompliment(session)
	default:
		log.Warn().Str("data", query.Data).Int64("userId", session.userId).Msg("unknown callback")
	}
}
