package converter

import (
	dto "gamehall_backend/internal/api/dto/lotto"
	"gamehall_backend/internal/model"
)

func ToLottoStateResponse(state model.LottoState) dto.StateResponse {
	return dto.StateResponse{
		SessionID:     state.SessionID,
		GameID:        state.GameID,
		Status:        state.Status,
		MainSelected:  state.MainSelected,
		BonusSelected: state.BonusSelected,
		MainDrawn:     state.MainDrawn,
		BonusDrawn:    state.BonusDrawn,
		Jackpot:       state.Jackpot.String(),
		DrawDeadline:  state.DrawDeadline,
		MinBet:        state.MinBet.String(),
		MaxBet:        state.MaxBet.String(),
	}
}

func ToLottoOutcomeResponse(outcome model.Outcome) dto.OutcomeResponse {
	resp := dto.OutcomeResponse{
		GameID:  outcome.GameID,
		Wager:   outcome.Wager.String(),
		Payout:  outcome.Payout.String(),
		Balance: outcome.Balance.String(),
	}
	if outcome.Lotto != nil {
		resp.MainDrawn = outcome.Lotto.MainDrawn
		resp.BonusDrawn = outcome.Lotto.BonusDrawn
		resp.MainMatches = outcome.Lotto.MainMatches
		resp.BonusMatch = outcome.Lotto.BonusMatch
		resp.Tier = outcome.Lotto.Tier
		resp.Jackpot = outcome.Lotto.Jackpot
		resp.Multiplier = outcome.Lotto.Multiplier.String()
	}
	return resp
}
