package converter

import (
	dto "gamehall_backend/internal/api/dto/wallet"
	"gamehall_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToTransactionResponse(tx model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        tx.ID,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount.String(),
		Status:    string(tx.Status),
		Timestamp: tx.Timestamp,
		GameID:    tx.GameID,
		Reference: tx.Reference,
	}
}

func ToTransactionsResponse(balance decimal.Decimal, txs []model.Transaction) dto.TransactionsResponse {
	out := make([]dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = ToTransactionResponse(tx)
	}
	return dto.TransactionsResponse{
		Balance:      balance.String(),
		Transactions: out,
	}
}
