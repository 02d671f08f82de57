package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Снимки состояния активных сессий для слоя представления

type KenoState struct {
	SessionID     string
	GameID        string
	Status        string
	Selected      []int
	Drawn         []int
	MaxSelections int
	PoolSize      int
	MinBet        decimal.Decimal
	MaxBet        decimal.Decimal
}

type BingoState struct {
	SessionID string
	GameID    string
	Status    string
	Card      [][]int
	Marked    [][2]int
	Drawn     []int
	MinBet    decimal.Decimal
	MaxBet    decimal.Decimal
}

type LottoState struct {
	SessionID     string
	GameID        string
	Status        string
	MainSelected  []int
	BonusSelected []int
	MainDrawn     []int
	BonusDrawn    []int
	Jackpot       decimal.Decimal
	DrawDeadline  time.Time
	MinBet        decimal.Decimal
	MaxBet        decimal.Decimal
}
