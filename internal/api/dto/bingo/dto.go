package bingo

type MarkRequest struct {
	Row int `json:"row"` // Строка карточки (0..4)
	Col int `json:"col"` // Колонка карточки (0..4)
}

type PlayRequest struct {
	Bet float64 `json:"bet"` // Размер ставки
}

type StateResponse struct {
	SessionID string   `json:"session_id"`
	GameID    string   `json:"game_id"`
	Status    string   `json:"status"` // waiting | playing | complete
	Card      [][]int  `json:"card"`   // Карточка 5x5, 0 — свободная ячейка
	Marked    [][2]int `json:"marked"` // Отмеченные ячейки (row, col)
	Drawn     []int    `json:"drawn"`  // Вытянутые числа
	MinBet    string   `json:"min_bet"`
	MaxBet    string   `json:"max_bet"`
}

type OutcomeResponse struct {
	GameID     string `json:"game_id"`
	Wager      string `json:"wager"`
	Drawn      []int  `json:"drawn"`
	Pattern    string `json:"pattern"`    // Выигрышный паттерн, пусто если нет
	Multiplier string `json:"multiplier"` // Множитель паттерна
	Payout     string `json:"payout"`
	Balance    string `json:"balance"`
}
