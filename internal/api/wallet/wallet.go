package wallet

import (
	"net/http"
	"strconv"

	"gamehall_backend/internal/api"
	dto "gamehall_backend/internal/api/dto/wallet"
	"gamehall_backend/internal/converter"
	"gamehall_backend/internal/service"
	"gamehall_backend/pkg/req"
	"gamehall_backend/pkg/resp"

	"github.com/shopspring/decimal"
)

// Лимит списка транзакций по умолчанию
const defaultTxLimit = 50

type HandlerDeps struct {
	Serv service.WalletService
}

type Handler struct {
	serv service.WalletService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.serv.Deposit(r.Context(), decimal.NewFromFloat(payload.Amount))
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionResponse(*tx))
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.serv.Withdraw(r.Context(), decimal.NewFromFloat(payload.Amount))
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionResponse(*tx))
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance.String()})
}

func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	limit := defaultTxLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	txs, err := h.serv.Transactions(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionsResponse(balance, txs))
}
