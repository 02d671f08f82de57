package game

import (
	"errors"
	"time"

	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrIncompleteTicket Билет заполнен не полностью (нужно 6 основных чисел и 1 бонусное)
var ErrIncompleteTicket = errors.New("lotto ticket is incomplete")

// LottoConfig Параметры лото на момент создания сессии
type LottoConfig struct {
	MinBet       decimal.Decimal
	MaxBet       decimal.Decimal
	MainPool     int
	MainPicks    int
	BonusPool    int
	BonusPicks   int
	Tiers        payout.TierRules
	Jackpot      decimal.Decimal
	DrawDeadline time.Time
}

// LottoSession Сессия лото: open -> closed -> drawn
type LottoSession struct {
	id           string
	gameID       string
	cfg          LottoConfig
	status       Status
	mainSelected []int
	bonusSelect  []int
	mainDrawn    []int
	bonusDrawn   []int
	wager        decimal.Decimal
}

func NewLottoSession(gameID string, cfg LottoConfig) *LottoSession {
	return &LottoSession{
		id:     uuid.NewString(),
		gameID: gameID,
		cfg:    cfg,
		status: StatusOpen,
	}
}

func (s *LottoSession) ID() string               { return s.id }
func (s *LottoSession) GameID() string           { return s.gameID }
func (s *LottoSession) Variant() Variant         { return VariantLotto }
func (s *LottoSession) Status() Status           { return s.status }
func (s *LottoSession) IsOpen() bool             { return s.status == StatusOpen }
func (s *LottoSession) MinBet() decimal.Decimal  { return s.cfg.MinBet }
func (s *LottoSession) MaxBet() decimal.Decimal  { return s.cfg.MaxBet }
func (s *LottoSession) Wager() decimal.Decimal   { return s.wager }
func (s *LottoSession) Jackpot() decimal.Decimal { return s.cfg.Jackpot }
func (s *LottoSession) DrawDeadline() time.Time  { return s.cfg.DrawDeadline }

func (s *LottoSession) MainSelected() []int  { return append([]int(nil), s.mainSelected...) }
func (s *LottoSession) BonusSelected() []int { return append([]int(nil), s.bonusSelect...) }
func (s *LottoSession) MainDrawn() []int     { return append([]int(nil), s.mainDrawn...) }
func (s *LottoSession) BonusDrawn() []int    { return append([]int(nil), s.bonusDrawn...) }

// SelectMain Добавляет основное число. Повторный выбор — no-op
func (s *LottoSession) SelectMain(n int) error {
	if s.status != StatusOpen {
		return ErrInvalidStateTransition
	}
	if n < 1 || n > s.cfg.MainPool {
		return ErrInvalidSelection
	}
	if contains(s.mainSelected, n) {
		return nil
	}
	if len(s.mainSelected) >= s.cfg.MainPicks {
		return ErrSelectionLimitExceeded
	}
	s.mainSelected = append(s.mainSelected, n)
	return nil
}

// SelectBonus Добавляет бонусное число
func (s *LottoSession) SelectBonus(n int) error {
	if s.status != StatusOpen {
		return ErrInvalidStateTransition
	}
	if n < 1 || n > s.cfg.BonusPool {
		return ErrInvalidSelection
	}
	if contains(s.bonusSelect, n) {
		return nil
	}
	if len(s.bonusSelect) >= s.cfg.BonusPicks {
		return ErrSelectionLimitExceeded
	}
	s.bonusSelect = append(s.bonusSelect, n)
	return nil
}

// DeselectMain Убирает основное число из выбора
func (s *LottoSession) DeselectMain(n int) error {
	if s.status != StatusOpen {
		return ErrInvalidStateTransition
	}
	s.mainSelected = remove(s.mainSelected, n)
	return nil
}

// DeselectBonus Убирает бонусное число из выбора
func (s *LottoSession) DeselectBonus(n int) error {
	if s.status != StatusOpen {
		return ErrInvalidStateTransition
	}
	s.bonusSelect = remove(s.bonusSelect, n)
	return nil
}

// Clear Сбрасывает весь билет
func (s *LottoSession) Clear() error {
	if s.status != StatusOpen {
		return ErrInvalidStateTransition
	}
	s.mainSelected = nil
	s.bonusSelect = nil
	return nil
}

// QuickPick Заполняет билет случайными числами вместо ручного выбора
func (s *LottoSession) QuickPick(p draw.Provider) error {
	if s.status != StatusOpen {
		return ErrInvalidStateTransition
	}

	main, err := p.DrawNumbers(s.cfg.MainPool, s.cfg.MainPicks)
	if err != nil {
		return err
	}
	bonus, err := p.DrawNumbers(s.cfg.BonusPool, s.cfg.BonusPicks)
	if err != nil {
		return err
	}

	s.mainSelected = main
	s.bonusSelect = bonus
	return nil
}

// Commit Фиксирует ставку по полностью заполненному билету
func (s *LottoSession) Commit(wager decimal.Decimal) error {
	if s.status != StatusOpen {
		return ErrInvalidStateTransition
	}
	if len(s.mainSelected) != s.cfg.MainPicks || len(s.bonusSelect) != s.cfg.BonusPicks {
		return ErrIncompleteTicket
	}
	s.wager = wager
	s.status = StatusClosed
	return nil
}

// Draw Тянет основной и бонусный тиражи один раз.
// Возвращает основной тираж; бонусный доступен через BonusDrawn
func (s *LottoSession) Draw(p draw.Provider) ([]int, error) {
	switch s.status {
	case StatusClosed:
		if s.mainDrawn == nil {
			main, err := p.DrawNumbers(s.cfg.MainPool, s.cfg.MainPicks)
			if err != nil {
				return nil, err
			}
			bonus, err := p.DrawNumbers(s.cfg.BonusPool, s.cfg.BonusPicks)
			if err != nil {
				return nil, err
			}
			s.mainDrawn = main
			s.bonusDrawn = bonus
			s.status = StatusDrawn
		}
		return s.MainDrawn(), nil
	case StatusDrawn:
		return s.MainDrawn(), nil
	default:
		return nil, ErrInvalidStateTransition
	}
}

// Evaluate Находит призовой уровень по упорядоченным правилам,
// от старшего к младшему. Джекпотный уровень платит фиксированную сумму
func (s *LottoSession) Evaluate() (*Result, error) {
	if s.status != StatusDrawn {
		return nil, ErrInvalidStateTransition
	}

	mainMatches := 0
	for _, n := range s.mainSelected {
		if contains(s.mainDrawn, n) {
			mainMatches++
		}
	}

	bonusMatch := true
	for _, n := range s.bonusSelect {
		if !contains(s.bonusDrawn, n) {
			bonusMatch = false
			break
		}
	}

	res := &model.LottoResult{
		MainDrawn:   s.MainDrawn(),
		BonusDrawn:  s.BonusDrawn(),
		MainMatches: mainMatches,
		BonusMatch:  bonusMatch,
		Multiplier:  decimal.Zero,
	}

	payoutAmount := decimal.Zero
	if tier := s.cfg.Tiers.Resolve(mainMatches, bonusMatch); tier != nil {
		res.Tier = tier.Name
		res.Jackpot = tier.Jackpot
		if tier.Jackpot {
			payoutAmount = s.cfg.Jackpot
		} else {
			res.Multiplier = tier.Multiplier
			payoutAmount = tier.Multiplier.Mul(s.wager)
		}
	}

	return &Result{
		Payout: payoutAmount,
		Lotto:  res,
	}, nil
}
