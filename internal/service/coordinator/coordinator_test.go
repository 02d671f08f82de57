package coordinator

import (
	"context"
	"errors"
	"testing"

	"gamehall_backend/internal/game"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/payout"
	"gamehall_backend/internal/wallet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider Отдаёт один и тот же тираж либо ошибку
type fakeProvider struct {
	drawn []int
	err   error
}

func (p *fakeProvider) DrawNumbers(poolSize, count int) ([]int, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.drawn, nil
}

func newKenoSession(t *testing.T) *game.KenoSession {
	t.Helper()
	s := game.NewKenoSession("keno", game.KenoConfig{
		MinBet:        decimal.NewFromInt(1),
		MaxBet:        decimal.NewFromInt(100),
		MaxSelections: 3,
		PoolSize:      80,
		DrawCount:     3,
		Payouts: payout.NumberTable{
			2: decimal.NewFromInt(4),
		},
	})
	require.NoError(t, s.Select(1))
	require.NoError(t, s.Select(2))
	return s
}

func fundedLedgers(t *testing.T, userID int, amount int64) *wallet.Registry {
	t.Helper()
	ledgers := wallet.NewRegistry()
	_, err := ledgers.Ledger(userID).Credit(decimal.NewFromInt(amount), model.TxDeposit, "", "")
	require.NoError(t, err)
	return ledgers
}

func TestPlayWinningRound(t *testing.T) {
	ledgers := fundedLedgers(t, 1, 100)
	c := New(ledgers, &fakeProvider{drawn: []int{1, 2, 50}}, nil, nil)

	sess := newKenoSession(t)
	out, err := c.Play(context.Background(), 1, sess, decimal.NewFromInt(10))
	require.NoError(t, err)

	// Ставка 10 списана, выигрыш 40 начислен
	assert.True(t, out.Wager.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.Payout.Equal(decimal.NewFromInt(40)))
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(130)))
	assert.True(t, ledgers.Ledger(1).Balance().Equal(decimal.NewFromInt(130)))

	require.NotNil(t, out.Keno)
	assert.Equal(t, 2, out.Keno.MatchCount)

	// Раунд завершён, сессия закрыта для повторной игры
	assert.False(t, sess.IsOpen())
	_, err = c.Play(context.Background(), 1, sess, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, game.ErrInvalidStateTransition)
}

func TestPlayLosingRound(t *testing.T) {
	ledgers := fundedLedgers(t, 1, 100)
	c := New(ledgers, &fakeProvider{drawn: []int{50, 60, 70}}, nil, nil)

	out, err := c.Play(context.Background(), 1, newKenoSession(t), decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.True(t, out.Payout.IsZero())
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(90)))

	// В истории только депозит и ставка, выплаты нет
	txs := ledgers.Ledger(1).Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, model.TxWager, txs[0].Kind)
}

func TestPlayRejectsWagerOutOfRange(t *testing.T) {
	ledgers := fundedLedgers(t, 1, 1000)
	c := New(ledgers, &fakeProvider{drawn: []int{1, 2, 3}}, nil, nil)

	sess := newKenoSession(t)
	_, err := c.Play(context.Background(), 1, sess, decimal.NewFromInt(101))
	assert.ErrorIs(t, err, ErrInvalidWager)

	_, err = c.Play(context.Background(), 1, sess, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidWager)

	// Сессия не тронута, баланс не менялся
	assert.True(t, sess.IsOpen())
	assert.True(t, ledgers.Ledger(1).Balance().Equal(decimal.NewFromInt(1000)))
}

func TestPlayInsufficientFundsLeavesSessionOpen(t *testing.T) {
	ledgers := fundedLedgers(t, 1, 5)
	c := New(ledgers, &fakeProvider{drawn: []int{1, 2, 3}}, nil, nil)

	sess := newKenoSession(t)
	_, err := c.Play(context.Background(), 1, sess, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)

	// Сессия остаётся открытой и пригодной для меньшей ставки
	assert.True(t, sess.IsOpen())
	assert.True(t, ledgers.Ledger(1).Balance().Equal(decimal.NewFromInt(5)))

	out, err := c.Play(context.Background(), 1, sess, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(20)))
}

func TestPlayRefundsWagerOnDrawFailure(t *testing.T) {
	ledgers := fundedLedgers(t, 1, 100)
	drawErr := errors.New("draw backend unavailable")
	c := New(ledgers, &fakeProvider{err: drawErr}, nil, nil)

	_, err := c.Play(context.Background(), 1, newKenoSession(t), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, drawErr)

	// Ставка списана и тут же возвращена компенсирующим начислением
	ledger := ledgers.Ledger(1)
	assert.True(t, ledger.Balance().Equal(decimal.NewFromInt(100)))

	txs := ledger.Transactions()
	require.Len(t, txs, 3)
	assert.Equal(t, model.TxPayout, txs[0].Kind)
	assert.Equal(t, refundReference, txs[0].Reference)
	assert.Equal(t, model.TxWager, txs[1].Kind)
}
