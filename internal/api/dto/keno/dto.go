package keno

type SelectRequest struct {
	Number int `json:"number"` // Число на доске (1..pool_size)
}

type PlayRequest struct {
	Bet float64 `json:"bet"` // Размер ставки
}

type StateResponse struct {
	SessionID     string `json:"session_id"`
	GameID        string `json:"game_id"`
	Status        string `json:"status"`         // waiting | drawing | complete
	Selected      []int  `json:"selected"`       // Выбранные числа
	Drawn         []int  `json:"drawn"`          // Вытянутые числа (в порядке розыгрыша)
	MaxSelections int    `json:"max_selections"` // Лимит выбора
	PoolSize      int    `json:"pool_size"`
	MinBet        string `json:"min_bet"`
	MaxBet        string `json:"max_bet"`
}

type OutcomeResponse struct {
	GameID     string `json:"game_id"`
	Wager      string `json:"wager"`       // Списанная ставка
	Drawn      []int  `json:"drawn"`       // Вытянутые числа
	Matched    []int  `json:"matched"`     // Совпавшие числа
	MatchCount int    `json:"match_count"` // Количество совпадений
	Multiplier string `json:"multiplier"`  // Множитель по таблице
	Payout     string `json:"payout"`      // Выплата
	Balance    string `json:"balance"`     // Баланс после
}
