package api

import (
	"errors"
	"net/http"

	"gamehall_backend/internal/game"
	"gamehall_backend/internal/service"
	"gamehall_backend/internal/service/coordinator"
	"gamehall_backend/internal/wallet"
)

// StatusFromError Преобразует типизированные ошибки ядра в HTTP статусы
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrNoActiveSession):
		return http.StatusNotFound
	case errors.Is(err, coordinator.ErrInvalidWager),
		errors.Is(err, game.ErrInvalidStateTransition),
		errors.Is(err, game.ErrSelectionLimitExceeded),
		errors.Is(err, game.ErrInvalidSelection),
		errors.Is(err, game.ErrIncompleteTicket),
		errors.Is(err, wallet.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
