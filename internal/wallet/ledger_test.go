package wallet

import (
	"sync"
	"testing"

	"gamehall_backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerDebitCredit(t *testing.T) {
	l := NewLedger(1)

	_, err := l.Credit(decimal.NewFromInt(100), model.TxDeposit, "", "DEP000001")
	require.NoError(t, err)
	assert.True(t, l.Balance().Equal(decimal.NewFromInt(100)))

	tx, err := l.Debit(decimal.NewFromInt(30), model.TxWager, "keno", "")
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-30)))
	assert.Equal(t, model.TxCompleted, tx.Status)
	assert.True(t, l.Balance().Equal(decimal.NewFromInt(70)))
}

func TestLedgerInsufficientFundsLeavesStateUntouched(t *testing.T) {
	l := NewLedger(1)

	_, err := l.Credit(decimal.NewFromInt(10), model.TxDeposit, "", "")
	require.NoError(t, err)

	_, err = l.Debit(decimal.NewFromInt(11), model.TxWager, "keno", "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Ни баланс, ни история не изменились
	assert.True(t, l.Balance().Equal(decimal.NewFromInt(10)))
	assert.Len(t, l.Transactions(), 1)
}

func TestLedgerRejectsNonPositiveAmounts(t *testing.T) {
	l := NewLedger(1)

	_, err := l.Credit(decimal.Zero, model.TxDeposit, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = l.Debit(decimal.NewFromInt(-5), model.TxWager, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = l.RequestWithdrawal(decimal.Zero, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedgerWithdrawalReservesImmediately(t *testing.T) {
	l := NewLedger(1)

	_, err := l.Credit(decimal.NewFromInt(100), model.TxDeposit, "", "")
	require.NoError(t, err)

	tx, err := l.RequestWithdrawal(decimal.NewFromInt(40), "WD000001")
	require.NoError(t, err)
	assert.Equal(t, model.TxPending, tx.Status)
	assert.Equal(t, model.TxWithdrawal, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-40)))

	// Зарезервированная сумма недоступна для ставок
	assert.True(t, l.Balance().Equal(decimal.NewFromInt(60)))
	_, err = l.Debit(decimal.NewFromInt(61), model.TxWager, "keno", "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestLedgerTransactionsNewestFirst(t *testing.T) {
	l := NewLedger(1)

	_, err := l.Credit(decimal.NewFromInt(100), model.TxDeposit, "", "first")
	require.NoError(t, err)
	_, err = l.Debit(decimal.NewFromInt(10), model.TxWager, "keno", "second")
	require.NoError(t, err)
	_, err = l.Credit(decimal.NewFromInt(20), model.TxPayout, "keno", "third")
	require.NoError(t, err)

	txs := l.Transactions()
	require.Len(t, txs, 3)
	assert.Equal(t, "third", txs[0].Reference)
	assert.Equal(t, "second", txs[1].Reference)
	assert.Equal(t, "first", txs[2].Reference)
}

func TestLedgerSnapshotRestore(t *testing.T) {
	l := NewLedger(1)

	_, err := l.Credit(decimal.NewFromInt(50), model.TxDeposit, "", "")
	require.NoError(t, err)
	_, err = l.Debit(decimal.NewFromInt(5), model.TxWager, "bingo", "")
	require.NoError(t, err)

	snap := l.Snapshot()

	restored := NewLedger(1)
	restored.Restore(snap)

	assert.True(t, restored.Balance().Equal(l.Balance()))
	assert.Equal(t, l.Transactions(), restored.Transactions())
}

func TestLedgerConcurrentOperations(t *testing.T) {
	l := NewLedger(1)

	_, err := l.Credit(decimal.NewFromInt(1000), model.TxDeposit, "", "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Debit(decimal.NewFromInt(1), model.TxWager, "keno", "")
			_, _ = l.Credit(decimal.NewFromInt(1), model.TxPayout, "keno", "")
		}()
	}
	wg.Wait()

	assert.True(t, l.Balance().Equal(decimal.NewFromInt(1000)))
	assert.Len(t, l.Transactions(), 201)
}

func TestRegistryReturnsSameLedger(t *testing.T) {
	r := NewRegistry()

	a := r.Ledger(7)
	b := r.Ledger(7)
	assert.Same(t, a, b)

	r.Drop(7)
	c := r.Ledger(7)
	assert.NotSame(t, a, c)
}
