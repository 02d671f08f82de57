package keno

import (
	"context"
	"errors"
	"sync"

	"gamehall_backend/internal/config"
	"gamehall_backend/internal/game"
	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/service"
	"gamehall_backend/internal/service/coordinator"
)

type serv struct {
	cfg   config.KenoConfig
	coord *coordinator.Coordinator

	// Активные сессии по ID игрока: не больше одной на игрока
	mtx      sync.Mutex
	sessions map[int]*game.KenoSession
}

// NewKenoService Создать сервис кено
func NewKenoService(cfg config.KenoConfig, coord *coordinator.Coordinator) service.KenoService {
	return &serv{
		cfg:      cfg,
		coord:    coord,
		sessions: make(map[int]*game.KenoSession),
	}
}

// sessionConfig Собирает конфиг сессии из конфигурации игры
func (s *serv) sessionConfig() game.KenoConfig {
	return game.KenoConfig{
		MinBet:        s.cfg.MinBet(),
		MaxBet:        s.cfg.MaxBet(),
		MaxSelections: s.cfg.MaxSelections(),
		PoolSize:      s.cfg.PoolSize(),
		DrawCount:     s.cfg.DrawCount(),
		Payouts:       s.cfg.PayoutTable(),
	}
}

// NewSession Создает свежую сессию, заменяя предыдущую.
// Завершенная сессия не переиспользуется — новый раунд всегда с чистого экземпляра
func (s *serv) NewSession(ctx context.Context) (*model.KenoState, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess := game.NewKenoSession(s.cfg.GameID(), s.sessionConfig())
	s.sessions[userID] = sess
	return s.state(sess), nil
}

func (s *serv) Select(ctx context.Context, number int) (*model.KenoState, error) {
	return s.mutate(ctx, func(sess *game.KenoSession) error {
		return sess.Select(number)
	})
}

func (s *serv) Deselect(ctx context.Context, number int) (*model.KenoState, error) {
	return s.mutate(ctx, func(sess *game.KenoSession) error {
		return sess.Deselect(number)
	})
}

func (s *serv) Clear(ctx context.Context) (*model.KenoState, error) {
	return s.mutate(ctx, func(sess *game.KenoSession) error {
		return sess.Clear()
	})
}

func (s *serv) State(ctx context.Context) (*model.KenoState, error) {
	return s.mutate(ctx, func(*game.KenoSession) error { return nil })
}

// mutate Выполняет операцию над активной сессией игрока под общим замком
func (s *serv) mutate(ctx context.Context, op func(*game.KenoSession) error) (*model.KenoState, error) {
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

func (s *serv) state(sess *game.KenoSession) *model.KenoState {
	return &model.KenoState{
		SessionID:     sess.ID(),
		GameID:        sess.GameID(),
		Status:        string(sess.Status()),
		Selected:      sess.Selected(),
		Drawn:         sess.Drawn(),
		MaxSelections: sess.MaxSelections(),
		PoolSize:      sess.PoolSize(),
		MinBet:        sess.MinBet(),
		MaxBet:        sess.MaxBet(),
	}
}
