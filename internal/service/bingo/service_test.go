package bingo

import (
	"context"
	"errors"
	"testing"

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

func (stubConfig) GameID() string          { return "bingo" }
func (stubConfig) MinBet() decimal.Decimal { return decimal.NewFromInt(1) }
func (stubConfig) MaxBet() decimal.Decimal { return decimal.NewFromInt(100) }
func (stubConfig) PoolSize() int           { return 75 }
func (stubConfig) DrawCount() int          { return 30 }
func (stubConfig) Patterns() payout.PatternTable {
	return payout.PatternTable{
		game.PatternRow:    decimal.NewFromInt(10),
		game.PatternColumn: decimal.NewFromInt(10),
	}
}

func newTestService(t *testing.T) (service.BingoService, context.Context) {
	t.Helper()

	ledgers := wallet.NewRegistry()
	_, err := ledgers.Ledger(1).Credit(decimal.NewFromInt(1000), model.TxDeposit, "", "")
	require.NoError(t, err)

	provider := draw.NewSeededProvider(7)
	coord := coordinator.New(ledgers, provider, nil, nil)
	return NewBingoService(stubConfig{}, coord, provider), middleware.WithUserID(context.Background(), 1)
}

// Отметки на карточке не должны меняться, пока координатор ведёт партию:
// сервис держит свой замок на весь цикл ставка -> розыгрыш -> расчёт
func TestServicePlayFreezesMarksAgainstConcurrentEdits(t *testing.T) {
	s, ctx := newTestService(t)

	_, err := s.NewSession(ctx)
	require.NoError(t, err)
	_, err = s.Mark(ctx, 0, 0)
	require.NoError(t, err)

	type playResult struct {
		out *model.Outcome
		err error
	}
	done := make(chan playResult, 1)
	go func() {
		out, err := s.Play(ctx, decimal.NewFromInt(5))
		done <- playResult{out: out, err: err}
	}()

	// Дёргаем отметки, пока партия не заморозит карточку
	for i := 0; i < 100000; i++ {
		_, err := s.Mark(ctx, 1, 1)
		if errors.Is(err, game.ErrInvalidStateTransition) {
			break
		}
		require.NoError(t, err)

		_, err = s.Unmark(ctx, 1, 1)
		if errors.Is(err, game.ErrInvalidStateTransition) {
			break
		}
		require.NoError(t, err)
	}

	res := <-done
	require.NoError(t, res.err)
	require.NotNil(t, res.out.Bingo)

	// Партия завершена, карточка только читается
	state, err := s.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "complete", state.Status)
	assert.Equal(t, res.out.Bingo.Drawn, state.Drawn)

	_, err = s.Mark(ctx, 2, 0)
	assert.ErrorIs(t, err, game.ErrInvalidStateTransition)
}
