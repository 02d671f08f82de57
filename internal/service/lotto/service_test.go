package lotto

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/game"
	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/payout"
	"gamehall_backend/internal/service"
	"gamehall_backend/internal/service/coordinator"
	"gamehall_backend/internal/wallet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfig struct{}

func (stubConfig) GameID() string            { return "lotto" }
func (stubConfig) MinBet() decimal.Decimal   { return decimal.NewFromInt(2) }
func (stubConfig) MaxBet() decimal.Decimal   { return decimal.NewFromInt(20) }
func (stubConfig) MainPool() int             { return 49 }
func (stubConfig) MainPicks() int            { return 6 }
func (stubConfig) BonusPool() int            { return 10 }
func (stubConfig) BonusPicks() int           { return 1 }
func (stubConfig) Jackpot() decimal.Decimal  { return decimal.NewFromInt(1000000) }
func (stubConfig) DrawWindow() time.Duration { return 5 * time.Minute }
func (stubConfig) Tiers() payout.TierRules {
	return payout.TierRules{
		{Name: "jackpot", MainMatches: 6, Jackpot: true},
		{Name: "tier5", MainMatches: 3, Multiplier: decimal.NewFromInt(5)},
	}
}

func newTestService(t *testing.T) (service.LottoService, context.Context) {
	t.Helper()

	ledgers := wallet.NewRegistry()
	_, err := ledgers.Ledger(1).Credit(decimal.NewFromInt(1000), model.TxDeposit, "", "")
	require.NoError(t, err)

	provider := draw.NewSeededProvider(7)
	coord := coordinator.New(ledgers, provider, nil, nil)
	return NewLottoService(stubConfig{}, coord, provider), middleware.WithUserID(context.Background(), 1)
}

func fillTicket(t *testing.T, s service.LottoService, ctx context.Context) {
	t.Helper()
	for _, n := range []int{1, 2, 3, 4, 5, 6} {
		_, err := s.SelectMain(ctx, n)
		require.NoError(t, err)
	}
	_, err := s.SelectBonus(ctx, 1)
	require.NoError(t, err)
}

func TestServicePlayRejectsIncompleteTicket(t *testing.T) {
	s, ctx := newTestService(t)

	_, err := s.NewSession(ctx)
	require.NoError(t, err)
	_, err = s.SelectMain(ctx, 1)
	require.NoError(t, err)

	// Ставка не списывается: билет отсекается до обращения к кошельку
	_, err = s.Play(ctx, decimal.NewFromInt(2))
	assert.ErrorIs(t, err, game.ErrIncompleteTicket)
}

// Состав билета не должен меняться, пока координатор ведёт тираж:
// сервис держит свой замок на весь цикл ставка -> розыгрыш -> расчёт
func TestServicePlayFreezesTicketAgainstConcurrentEdits(t *testing.T) {
	s, ctx := newTestService(t)

	_, err := s.NewSession(ctx)
	require.NoError(t, err)
	fillTicket(t, s, ctx)

	// Конкурент дёргает бонусное число, пока тираж не заморозит билет
	togglerErr := make(chan error, 1)
	go func() {
		for i := 0; i < 100000; i++ {
			_, err := s.DeselectBonus(ctx, 1)
			if errors.Is(err, game.ErrInvalidStateTransition) {
				break
			}
			if err != nil {
				togglerErr <- err
				return
			}
			_, err = s.SelectBonus(ctx, 1)
			if errors.Is(err, game.ErrInvalidStateTransition) {
				break
			}
			if err != nil {
				togglerErr <- err
				return
			}
		}
		togglerErr <- nil
	}()

	// Неполный билет в момент захвата замка — не сбой, пробуем снова
	var out *model.Outcome
	for i := 0; i < 100000; i++ {
		out, err = s.Play(ctx, decimal.NewFromInt(2))
		if err == nil {
			break
		}
		require.ErrorIs(t, err, game.ErrIncompleteTicket)
	}
	require.NoError(t, err)
	require.NotNil(t, out.Lotto)
	require.NoError(t, <-togglerErr)

	// Тираж завершён, билет только читается
	state, err := s.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "drawn", state.Status)
	assert.Equal(t, out.Lotto.MainDrawn, state.MainDrawn)
	assert.Len(t, state.BonusSelected, 1)

	_, err = s.SelectMain(ctx, 7)
	assert.ErrorIs(t, err, game.ErrInvalidStateTransition)
}
