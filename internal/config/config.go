package config

import (
	"time"

	"gamehall_backend/internal/payout"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type KenoConfig interface {
	GameID() string
	MinBet() decimal.Decimal
	MaxBet() decimal.Decimal
	MaxSelections() int
	PoolSize() int
	DrawCount() int
	PayoutTable() payout.NumberTable
}

type BingoConfig interface {
	GameID() string
	MinBet() decimal.Decimal
	MaxBet() decimal.Decimal
	PoolSize() int
	DrawCount() int
	Patterns() payout.PatternTable
}

type LottoConfig interface {
	GameID() string
	MinBet() decimal.Decimal
	MaxBet() decimal.Decimal
	MainPool() int
	MainPicks() int
	BonusPool() int
	BonusPicks() int
	Tiers() payout.TierRules
	Jackpot() decimal.Decimal
	// DrawWindow Сколько времени остаётся до тиража у новой сессии
	DrawWindow() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
