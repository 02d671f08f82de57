package wallet

import (
	"errors"
	"sync"
	"time"

	"gamehall_backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds Баланса не хватает на списание
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount Сумма операции должна быть строго положительной
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Ledger Кошелёк одного игрока: баланс и история транзакций.
// Все мутации идут через один мьютекс — никто не видит
// наполовину применённую пару баланс/история
type Ledger struct {
	mtx      sync.Mutex
	playerID int
	balance  decimal.Decimal
	// История только дописывается, старые записи первыми
	transactions []model.Transaction
}

// NewLedger Создать пустой кошелёк для игрока
func NewLedger(playerID int) *Ledger {
	return &Ledger{
		playerID: playerID,
		balance:  decimal.Zero,
	}
}

func (l *Ledger) PlayerID() int { return l.playerID }

// Balance Текущий баланс
func (l *Ledger) Balance() decimal.Decimal {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.balance
}

// Transactions Возвращает копию истории, новые записи первыми
func (l *Ledger) Transactions() []model.Transaction {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	out := make([]model.Transaction, len(l.transactions))
	for i, tx := range l.transactions {
		out[len(out)-1-i] = tx
	}
	return out
}

// Debit Списывает сумму с баланса и дописывает завершённую транзакцию
// с отрицательной суммой. При нехватке средств ни баланс, ни история
// не меняются
func (l *Ledger) Debit(amount decimal.Decimal, kind model.TxKind, gameID, reference string) (*model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	tx := l.append(amount.Neg(), kind, model.TxCompleted, gameID, reference)
	return &tx, nil
}

// Credit Начисляет сумму на баланс. Начисления не блокируются балансом
func (l *Ledger) Credit(amount decimal.Decimal, kind model.TxKind, gameID, reference string) (*model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	tx := l.append(amount, kind, model.TxCompleted, gameID, reference)
	return &tx, nil
}

// RequestWithdrawal Резервирует сумму под вывод: баланс уменьшается сразу,
// но транзакция остаётся в статусе pending до внешнего подтверждения
func (l *Ledger) RequestWithdrawal(amount decimal.Decimal, reference string) (*model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	tx := l.append(amount.Neg(), model.TxWithdrawal, model.TxPending, "", reference)
	return &tx, nil
}

// Snapshot Снимок кошелька для сохранения
func (l *Ledger) Snapshot() model.WalletSnapshot {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return model.WalletSnapshot{
		Balance:      l.balance,
		Transactions: append([]model.Transaction(nil), l.transactions...),
	}
}

// Restore Загружает снимок кошелька, затирая текущее состояние
func (l *Ledger) Restore(snap model.WalletSnapshot) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.balance = snap.Balance
	l.transactions = append([]model.Transaction(nil), snap.Transactions...)
}

// append Применяет подписанную сумму и дописывает транзакцию.
// Вызывается только под мьютексом
func (l *Ledger) append(signed decimal.Decimal, kind model.TxKind, status model.TxStatus, gameID, reference string) model.Transaction {
	tx := model.Transaction{
		ID:        uuid.NewString(),
		Kind:      kind,
		Amount:    signed,
		Status:    status,
		Timestamp: time.Now().UTC(),
		GameID:    gameID,
		Reference: reference,
	}
	l.balance = l.balance.Add(signed)
	l.transactions = append(l.transactions, tx)
	return tx
}
