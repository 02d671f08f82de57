package bingo

import (
	"net/http"

	"gamehall_backend/internal/api"
	dto "gamehall_backend/internal/api/dto/bingo"
	"gamehall_backend/internal/converter"
	"gamehall_backend/internal/service"
	"gamehall_backend/pkg/req"
	"gamehall_backend/pkg/resp"

	"github.com/shopspring/decimal"
)

type HandlerDeps struct {
	Serv service.BingoService
}

type Handler struct {
	serv service.BingoService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) NewSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.NewSession(r.Context())
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToBingoStateResponse(*state))
}

func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.MarkRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.Mark(r.Context(), payload.Row, payload.Col)
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoStateResponse(*state))
}

func (h *Handler) Unmark(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.MarkRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.Unmark(r.Context(), payload.Row, payload.Col)
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoStateResponse(*state))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.Clear(r.Context())
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoStateResponse(*state))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoStateResponse(*state))
}

func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.serv.Play(r.Context(), decimal.NewFromFloat(payload.Bet))
	if err != nil {
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoOutcomeResponse(*outcome))
}
