package wallet

import "time"

type DepositRequest struct {
	Amount float64 `json:"amount"` // Сумма депозита
}

type WithdrawRequest struct {
	Amount float64 `json:"amount"` // Сумма вывода
}

type BalanceResponse struct {
	Balance string `json:"balance"` // Баланс кошелька
}

type TransactionResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`   // deposit | withdrawal | wager | payout | bonus
	Amount    string    `json:"amount"` // Со знаком: списания отрицательные
	Status    string    `json:"status"` // pending | completed | failed
	Timestamp time.Time `json:"timestamp"`
	GameID    string    `json:"game_id,omitempty"`
	Reference string    `json:"reference,omitempty"`
}

type TransactionsResponse struct {
	Balance      string                `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"` // Новые первыми
}
