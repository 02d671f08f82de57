package model

import "github.com/shopspring/decimal"

// Outcome Итог цикла ставка -> розыгрыш -> расчёт
type Outcome struct {
	GameID  string
	Wager   decimal.Decimal
	Payout  decimal.Decimal
	Balance decimal.Decimal
	// Детали розыгрыша по варианту игры
	Keno  *KenoResult
	Bingo *BingoResult
	Lotto *LottoResult
}

// KenoResult Результат розыгрыша кено
type KenoResult struct {
	Drawn      []int
	Matched    []int
	MatchCount int
	Multiplier decimal.Decimal
}

// BingoResult Результат партии бинго
type BingoResult struct {
	Drawn      []int
	Pattern    string // Имя выигрышного паттерна, пустая строка если нет
	Multiplier decimal.Decimal
}

// LottoResult Результат тиража лото
type LottoResult struct {
	MainDrawn   []int
	BonusDrawn  []int
	MainMatches int
	BonusMatch  bool
	Tier        string // Имя призового уровня, пустая строка если нет
	Multiplier  decimal.Decimal
	Jackpot     bool
}
