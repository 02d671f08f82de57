package converter

import (
	dto "gamehall_backend/internal/api/dto/keno"
	"gamehall_backend/internal/model"
)

func ToKenoStateResponse(state model.KenoState) dto.StateResponse {
	return dto.StateResponse{
		SessionID:     state.SessionID,
		GameID:        state.GameID,
		Status:        state.Status,
		Selected:      state.Selected,
		Drawn:         state.Drawn,
		MaxSelections: state.MaxSelections,
		PoolSize:      state.PoolSize,
		MinBet:        state.MinBet.String(),
		MaxBet:        state.MaxBet.String(),
	}
}

func ToKenoOutcomeResponse(outcome model.Outcome) dto.OutcomeResponse {
	resp := dto.OutcomeResponse{
		GameID:  outcome.GameID,
		Wager:   outcome.Wager.String(),
		Payout:  outcome.Payout.String(),
		Balance: outcome.Balance.String(),
	}
	if outcome.Keno != nil {
		resp.Drawn = outcome.Keno.Drawn
		resp.Matched = outcome.Keno.Matched
		resp.MatchCount = outcome.Keno.MatchCount
		resp.Multiplier = outcome.Keno.Multiplier.String()
	}
	return resp
}
