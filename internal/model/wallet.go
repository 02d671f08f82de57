package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxKind Вид транзакции кошелька
type TxKind string

const (
	TxDeposit    TxKind = "deposit"
	TxWithdrawal TxKind = "withdrawal"
	TxWager      TxKind = "wager"
	TxPayout     TxKind = "payout"
	TxBonus      TxKind = "bonus"
)

// TxStatus Статус транзакции
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxCompleted TxStatus = "completed"
	TxFailed    TxStatus = "failed"
)

// Transaction Одна запись в истории кошелька.
// Amount хранится со знаком: списания отрицательные, начисления положительные
type Transaction struct {
	ID        string
	Kind      TxKind
	Amount    decimal.Decimal
	Status    TxStatus
	Timestamp time.Time
	GameID    string
	Reference string
}

// WalletSnapshot Снимок кошелька для коллаборатора персистентности.
// Транзакции идут в порядке добавления (старые первыми)
type WalletSnapshot struct {
	Balance      decimal.Decimal
	Transactions []Transaction
}
