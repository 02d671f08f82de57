package bingo

import (
	"context"
	"errors"
	"sync"

	"gamehall_backend/internal/config"
	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/game"
	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/service"
	"gamehall_backend/internal/service/coordinator"
)

type serv struct {
	cfg      config.BingoConfig
	coord    *coordinator.Coordinator
	provider draw.Provider

	// Активные сессии по ID игрока
	mtx      sync.Mutex
	sessions map[int]*game.BingoSession
}

// NewBingoService Создать сервис бинго.
// Провайдер нужен сервису напрямую для генерации карточек
func NewBingoService(cfg config.BingoConfig, coord *coordinator.Coordinator, provider draw.Provider) service.BingoService {
	return &serv{
		cfg:      cfg,
		coord:    coord,
		provider: provider,
		sessions: make(map[int]*game.BingoSession),
	}
}

func (s *serv) sessionConfig() game.BingoConfig {
	return game.BingoConfig{
		MinBet:    s.cfg.MinBet(),
		MaxBet:    s.cfg.MaxBet(),
		PoolSize:  s.cfg.PoolSize(),
		DrawCount: s.cfg.DrawCount(),
		Patterns:  s.cfg.Patterns(),
	}
}

// NewSession Создает сессию с новой карточкой, заменяя предыдущую
func (s *serv) NewSession(ctx context.Context) (*model.BingoState, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	sess, err := game.NewBingoSession(s.cfg.GameID(), s.sessionConfig(), s.provider)
	if err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.sessions[userID] = sess
	return s.state(sess), nil
}

func (s *serv) Mark(ctx context.Context, row, col int) (*model.BingoState, error) {
	return s.mutate(ctx, func(sess *game.BingoSession) error {
		return sess.Mark(row, col)
	})
}

func (s *serv) Unmark(ctx context.Context, row, col int) (*model.BingoState, error) {
	return s.mutate(ctx, func(sess *game.BingoSession) error {
		return sess.Unmark(row, col)
	})
}

func (s *serv) Clear(ctx context.Context) (*model.BingoState, error) {
	return s.mutate(ctx, func(sess *game.BingoSession) error {
		return sess.Clear()
	})
}

func (s *serv) State(ctx context.Context) (*model.BingoState, error) {
	return s.mutate(ctx, func(*game.BingoSession) error { return nil })
}

func (s *serv) mutate(ctx context.Context, op func(*game.BingoSession) error) (*model.BingoState, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, service.ErrNoActiveSession
	}
	if err := op(sess); err != nil {
		return nil, err
	}
	return s.state(sess), nil
}

func (s *serv) state(sess *game.BingoSession) *model.BingoState {
	return &model.BingoState{
		SessionID: sess.ID(),
		GameID:    sess.GameID(),
		Status:    string(sess.Status()),
		Card:      sess.Card(),
		Marked:    sess.Marked(),
		Drawn:     sess.Drawn(),
		MinBet:    sess.MinBet(),
		MaxBet:    sess.MaxBet(),
	}
}
