package converter

import (
	dto "gamehall_backend/internal/api/dto/bingo"
	"gamehall_backend/internal/model"
)

func ToBingoStateResponse(state model.BingoState) dto.StateResponse {
	return dto.StateResponse{
		SessionID: state.SessionID,
		GameID:    state.GameID,
		Status:    state.Status,
		Card:      state.Card,
		Marked:    state.Marked,
		Drawn:     state.Drawn,
		MinBet:    state.MinBet.String(),
		MaxBet:    state.MaxBet.String(),
	}
}

func ToBingoOutcomeResponse(outcome model.Outcome) dto.OutcomeResponse {
	resp := dto.OutcomeResponse{
		GameID:  outcome.GameID,
		Wager:   outcome.Wager.String(),
		Payout:  outcome.Payout.String(),
		Balance: outcome.Balance.String(),
	}
	if outcome.Bingo != nil {
		resp.Drawn = outcome.Bingo.Drawn
		resp.Pattern = outcome.Bingo.Pattern
		resp.Multiplier = outcome.Bingo.Multiplier.String()
	}
	return resp
}
