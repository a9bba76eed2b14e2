package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/raine/telegram-compliment-bot/internal/theme"
)

// handleThemeCommand handles /theme - flip and persist the light/dark
// preference.
func (b *Bot) handleThemeCommand(session *UserSession) {
	if session.storage == nil {
		session.reply(MsgThemeNotAvailable)
		return
	}

	// Chats give no hint about the user's colour scheme.
	current, err := theme.Load(session.storage, false)
	if err != nil {
		log.Warn().Err(err).Int64("userId", session.userId).Msg("failed to load theme")
	}

	next := current.Toggle()
	if err := theme.Save(session.storage, next); err != nil {
		log.Warn().Err(err).Int64("userId", session.userId).Msg("theme not persisted")
	}

	session.reply(MsgThemeSwitched, next.Icon(), next)
}
