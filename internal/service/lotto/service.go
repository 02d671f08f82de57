package lotto

import (
	"context"
	"errors"
	"sync"
	"time"

	"gamehall_backend/internal/config"
	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/game"
	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/service"
	"gamehall_backend/internal/service/coordinator"
)

type serv struct {
	cfg      config.LottoConfig
	coord    *coordinator.Coordinator
	provider draw.Provider

	// Активные билеты по ID игрока
	mtx      sync.Mutex
	sessions map[int]*game.LottoSession
}

// NewLottoService Создать сервис лото.
// Провайдер нужен сервису напрямую для автозаполнения билета
func NewLottoService(cfg config.LottoConfig, coord *coordinator.Coordinator, provider draw.Provider) service.LottoService {
	return &serv{
		cfg:      cfg,
		coord:    coord,
		provider: provider,
		sessions: make(map[int]*game.LottoSession),
	}
}

func (s *serv) sessionConfig() game.LottoConfig {
	return game.LottoConfig{
		MinBet:       s.cfg.MinBet(),
		MaxBet:       s.cfg.MaxBet(),
		MainPool:     s.cfg.MainPool(),
		MainPicks:    s.cfg.MainPicks(),
		BonusPool:    s.cfg.BonusPool(),
		BonusPicks:   s.cfg.BonusPicks(),
		Tiers:        s.cfg.Tiers(),
		Jackpot:      s.cfg.Jackpot(),
		DrawDeadline: time.Now().Add(s.cfg.DrawWindow()),
	}
}

// NewSession Создает свежий билет, заменяя предыдущий
func (s *serv) NewSession(ctx context.Context) (*model.LottoState, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess := game.NewLottoSession(s.cfg.GameID(), s.sessionConfig())
	s.sessions[userID] = sess
	return s.state(sess), nil
}

func (s *serv) SelectMain(ctx context.Context, number int) (*model.LottoState, error) {
	return s.mutate(ctx, func(sess *game.LottoSession) error {
		return sess.SelectMain(number)
	})
}

func (s *serv) SelectBonus(ctx context.Context, number int) (*model.LottoState, error) {
	return s.mutate(ctx, func(sess *game.LottoSession) error {
		return sess.SelectBonus(number)
	})
}

func (s *serv) DeselectMain(ctx context.Context, number int) (*model.LottoState, error) {
	return s.mutate(ctx, func(sess *game.LottoSession) error {
		return sess.DeselectMain(number)
	})
}

func (s *serv) DeselectBonus(ctx context.Context, number int) (*model.LottoState, error) {
	return s.mutate(ctx, func(sess *game.LottoSession) error {
		return sess.DeselectBonus(number)
	})
}

// QuickPick Заполняет билет случайными числами
func (s *serv) QuickPick(ctx context.Context) (*model.LottoState, error) {
	return s.mutate(ctx, func(sess *game.LottoSession) error {
		return sess.QuickPick(s.provider)
	})
}

func (s *serv) Clear(ctx context.Context) (*model.LottoState, error) {
	return s.mutate(ctx, func(sess *game.LottoSession) error {
		return sess.Clear()
	})
}

func (s *serv) State(ctx context.Context) (*model.LottoState, error) {
	return s.mutate(ctx, func(*game.LottoSession) error { return nil })
}

func (s *serv) mutate(ctx context.Context, op func(*game.LottoSession) error) (*model.LottoState, error) {
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

func (s *serv) state(sess *game.LottoSession) *model.LottoState {
	return &model.LottoState{
		SessionID:     sess.ID(),
		GameID:        sess.GameID(),
		Status:        string(sess.Status()),
		MainSelected:  sess.MainSelected(),
		BonusSelected: sess.BonusSelected(),
		MainDrawn:     sess.MainDrawn(),
		BonusDrawn:    sess.BonusDrawn(),
		Jackpot:       sess.Jackpot(),
		DrawDeadline:  sess.DrawDeadline(),
		MinBet:        sess.MinBet(),
		MaxBet:        sess.MaxBet(),
	}
}
