package lotto

import "time"

type SelectRequest struct {
	Number int `json:"number"` // Число билета
}

type PlayRequest struct {
	Bet float64 `json:"bet"` // Цена билета
}

type StateResponse struct {
	SessionID     string    `json:"session_id"`
	GameID        string    `json:"game_id"`
	Status        string    `json:"status"`         // open | closed | drawn
	MainSelected  []int     `json:"main_selected"`  // Основные числа (до 6)
	BonusSelected []int     `json:"bonus_selected"` // Бонусное число (до 1)
	MainDrawn     []int     `json:"main_drawn"`
	BonusDrawn    []int     `json:"bonus_drawn"`
	Jackpot       string    `json:"jackpot"`
	DrawDeadline  time.Time `json:"draw_deadline"`
	MinBet        string    `json:"min_bet"`
	MaxBet        string    `json:"max_bet"`
}

type OutcomeResponse struct {
	GameID      string `json:"game_id"`
	Wager       string `json:"wager"`
	MainDrawn   []int  `json:"main_drawn"`
	BonusDrawn  []int  `json:"bonus_drawn"`
	MainMatches int    `json:"main_matches"` // Совпало основных чисел
	BonusMatch  bool   `json:"bonus_match"`  // Совпало ли бонусное
	Tier        string `json:"tier"`         // Призовой уровень, пусто если нет
	Jackpot     bool   `json:"jackpot"`      // Выигран ли джекпот
	Multiplier  string `json:"multiplier"`
	Payout      string `json:"payout"`
	Balance     string `json:"balance"`
}
