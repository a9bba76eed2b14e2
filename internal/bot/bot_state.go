package bot

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/raine/telegram-compliment-bot/internal/compliments"
	"github.com/raine/telegram-compliment-bot/internal/storage"
)

type BotState struct {
	bot      *Bot
	mu       sync.Mutex
	sessions map[int64]*UserSession
}

func (bs *BotState) newUserSession(userId int64) (*UserSession, error) {
	ctx, cancel := context.WithCancel(context.Background())
	session := &UserSession{
		userId:   userId,
		sender:   bs.bot.tg,
		category: compliments.AllCategories,
		inbox:    make(chan SessionMessage, 10), // Buffered to avoid blocking
		ctx:      ctx,
		cancel:   cancel,
	}

	if bs.bot.store != nil {
		session.storage = storage.ForUser(bs.bot.store, userId)
	}

	// Storage problems only cost persistence; the user still gets the defaults.
	store, err := compliments.Load(session.backend())
	if err != nil {
		log.Warn().Err(err).Int64("userId", userId).Msg("using default compliments")
	}
	session.compliments = store

	log.Info().
		Int64("userId", userId).
		Int("categories", len(store.Categories())).
		Msg("new user session created")
	return session, nil
}

func (bs *BotState) getUserSession(userId int64) (*UserSession, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if session, ok := bs.sessions[userId]; ok {
		return session, nil
	}

	session, err := bs.newUserSession(userId)
	if err != nil {
		return nil, err
	}
	// Set the bot as the message handler and start the worker
	session.SetHandler(bs.bot)
	session.StartWorker()
	bs.sessions[userId] = session
	return session, nil
}

func (b *Bot) NewBotState() BotState {
	return BotState{
		bot:      b,
		sessions: make(map[int64]*UserSession),
	}
}

// Shutdown stops all session workers gracefully.
func (bs *BotState) Shutdown() {
	bs.mu.Lock()
	sessions := make([]*UserSession, 0, len(bs.sessions))
	for _, session := range bs.sessions {
		sessions = append(sessions, session)
	}
	bs.mu.Unlock()

	// Stop all workers (outside the lock to avoid blocking)
	for _, session := range sessions {
		session.Stop()
	}
	log.Info().Int("count", len(sessions)).Msg("stopped all session workers")
}
