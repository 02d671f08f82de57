package game

import (
	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KenoConfig Параметры кено на момент создания сессии.
// Все поля обязательны, умолчаний внутри ядра нет
type KenoConfig struct {
	MinBet        decimal.Decimal
	MaxBet        decimal.Decimal
	MaxSelections int
	PoolSize      int
	DrawCount     int
	Payouts       payout.NumberTable
}

// KenoSession Сессия кено: waiting -> drawing -> complete
type KenoSession struct {
	id       string
	gameID   string
	cfg      KenoConfig
	status   Status
	selected []int
	drawn    []int
	wager    decimal.Decimal
}

func NewKenoSession(gameID string, cfg KenoConfig) *KenoSession {
	return &KenoSession{
		id:     uuid.NewString(),
		gameID: gameID,
		cfg:    cfg,
		status: StatusWaiting,
	}
}

func (s *KenoSession) ID() string              { return s.id }
func (s *KenoSession) GameID() string          { return s.gameID }
func (s *KenoSession) Variant() Variant        { return VariantKeno }
func (s *KenoSession) Status() Status          { return s.status }
func (s *KenoSession) IsOpen() bool            { return s.status == StatusWaiting }
func (s *KenoSession) MinBet() decimal.Decimal { return s.cfg.MinBet }
func (s *KenoSession) MaxBet() decimal.Decimal { return s.cfg.MaxBet }
func (s *KenoSession) Wager() decimal.Decimal  { return s.wager }
func (s *KenoSession) MaxSelections() int      { return s.cfg.MaxSelections }
func (s *KenoSession) PoolSize() int           { return s.cfg.PoolSize }

// Selected Возвращает копию выбранных чисел в порядке выбора
func (s *KenoSession) Selected() []int {
	return append([]int(nil), s.selected...)
}

// Drawn Возвращает копию вытянутых чисел в порядке розыгрыша
func (s *KenoSession) Drawn() []int {
	return append([]int(nil), s.drawn...)
}

// Select Добавляет число к выбору. Повторный выбор того же числа — no-op
func (s *KenoSession) Select(n int) error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	if n < 1 || n > s.cfg.PoolSize {
		return ErrInvalidSelection
	}
	if contains(s.selected, n) {
		return nil
	}
	if len(s.selected) >= s.cfg.MaxSelections {
		return ErrSelectionLimitExceeded
	}
	s.selected = append(s.selected, n)
	return nil
}

// Deselect Убирает число из выбора
func (s *KenoSession) Deselect(n int) error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	s.selected = remove(s.selected, n)
	return nil
}

// Clear Сбрасывает весь выбор
func (s *KenoSession) Clear() error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	s.selected = nil
	return nil
}

// Commit Фиксирует ставку, выбор замораживается
func (s *KenoSession) Commit(wager decimal.Decimal) error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	s.wager = wager
	s.status = StatusDrawing
	return nil
}

// Draw Выполняет розыгрыш один раз. Повторный вызов возвращает записанный результат
func (s *KenoSession) Draw(p draw.Provider) ([]int, error) {
	switch s.status {
	case StatusDrawing:
		if s.drawn == nil {
			drawn, err := p.DrawNumbers(s.cfg.PoolSize, s.cfg.DrawCount)
			if err != nil {
				return nil, err
			}
			s.drawn = drawn
			s.status = StatusComplete
		}
		return s.Drawn(), nil
	case StatusComplete:
		return s.Drawn(), nil
	default:
		return nil, ErrInvalidStateTransition
	}
}

// Evaluate Считает совпадения и выплату по таблице.
// Количество совпадений вне таблицы даёт нулевую выплату, а не ошибку
func (s *KenoSession) Evaluate() (*Result, error) {
	if s.status != StatusComplete {
		return nil, ErrInvalidStateTransition
	}

	var matched []int
	for _, n := range s.selected {
		if contains(s.drawn, n) {
			matched = append(matched, n)
		}
	}

	mult := s.cfg.Payouts.Multiplier(len(matched))

	return &Result{
		Payout: mult.Mul(s.wager),
		Keno: &model.KenoResult{
			Drawn:      s.Drawn(),
			Matched:    matched,
			MatchCount: len(matched),
			Multiplier: mult,
		},
	}, nil
}
