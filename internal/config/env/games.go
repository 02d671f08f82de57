package env

import (
	"errors"
	"os"
	"time"

	"gamehall_backend/internal/config"
	"gamehall_backend/internal/payout"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Файл конфигурации игр. Все параметры обязательны:
// умолчаний внутри ядра нет, отсутствие значения — ошибка загрузки

type gamesFile struct {
	Keno  *kenoYAML  `yaml:"keno"`
	Bingo *bingoYAML `yaml:"bingo"`
	Lotto *lottoYAML `yaml:"lotto"`
}

type kenoYAML struct {
	GameID        string          `yaml:"game_id"`
	MinBet        float64         `yaml:"min_bet"`
	MaxBet        float64         `yaml:"max_bet"`
	MaxSelections int             `yaml:"max_selections"`
	PoolSize      int             `yaml:"pool_size"`
	DrawCount     int             `yaml:"draw_count"`
	PayoutTable   map[int]float64 `yaml:"payout_table"`
}

type bingoYAML struct {
	GameID    string             `yaml:"game_id"`
	MinBet    float64            `yaml:"min_bet"`
	MaxBet    float64            `yaml:"max_bet"`
	PoolSize  int                `yaml:"pool_size"`
	DrawCount int                `yaml:"draw_count"`
	Patterns  map[string]float64 `yaml:"patterns"`
}

type lottoYAML struct {
	GameID     string     `yaml:"game_id"`
	MinBet     float64    `yaml:"min_bet"`
	MaxBet     float64    `yaml:"max_bet"`
	MainPool   int        `yaml:"main_pool"`
	MainPicks  int        `yaml:"main_picks"`
	BonusPool  int        `yaml:"bonus_pool"`
	BonusPicks int        `yaml:"bonus_picks"`
	Jackpot    float64    `yaml:"jackpot"`
	DrawWindow string     `yaml:"draw_window"`
	Tiers      []tierYAML `yaml:"tiers"`
}

type tierYAML struct {
	Name        string  `yaml:"name"`
	MainMatches int     `yaml:"main_matches"`
	NeedBonus   bool    `yaml:"need_bonus"`
	Multiplier  float64 `yaml:"multiplier"`
	Jackpot     bool    `yaml:"jackpot"`
}

func loadGamesFile(path string) (*gamesFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	return &file, nil
}

// --- Кено ---

type kenoConfig struct {
	cfg kenoYAML
}

func NewKenoConfigFromYAML(path string) (config.KenoConfig, error) {
	file, err := loadGamesFile(path)
	if err != nil {
		return nil, err
	}
	if file.Keno == nil {
		return nil, errors.New("keno config not found")
	}
	if file.Keno.PoolSize <= 0 || file.Keno.DrawCount <= 0 || file.Keno.MaxSelections <= 0 {
		return nil, errors.New("invalid keno config")
	}

	return &kenoConfig{cfg: *file.Keno}, nil
}

func (c *kenoConfig) GameID() string          { return c.cfg.GameID }
func (c *kenoConfig) MinBet() decimal.Decimal { return decimal.NewFromFloat(c.cfg.MinBet) }
func (c *kenoConfig) MaxBet() decimal.Decimal { return decimal.NewFromFloat(c.cfg.MaxBet) }
func (c *kenoConfig) MaxSelections() int      { return c.cfg.MaxSelections }
func (c *kenoConfig) PoolSize() int           { return c.cfg.PoolSize }
func (c *kenoConfig) DrawCount() int          { return c.cfg.DrawCount }

func (c *kenoConfig) PayoutTable() payout.NumberTable {
	table := make(payout.NumberTable, len(c.cfg.PayoutTable))
	for matches, mult := range c.cfg.PayoutTable {
		table[matches] = decimal.NewFromFloat(mult)
	}
	return table
}

// --- Бинго ---

type bingoConfig struct {
	cfg bingoYAML
}

func NewBingoConfigFromYAML(path string) (config.BingoConfig, error) {
	file, err := loadGamesFile(path)
	if err != nil {
		return nil, err
	}
	if file.Bingo == nil {
		return nil, errors.New("bingo config not found")
	}
	if file.Bingo.PoolSize <= 0 || file.Bingo.DrawCount <= 0 || len(file.Bingo.Patterns) == 0 {
		return nil, errors.New("invalid bingo config")
	}

	return &bingoConfig{cfg: *file.Bingo}, nil
}

func (c *bingoConfig) GameID() string          { return c.cfg.GameID }
func (c *bingoConfig) MinBet() decimal.Decimal { return decimal.NewFromFloat(c.cfg.MinBet) }
func (c *bingoConfig) MaxBet() decimal.Decimal { return decimal.NewFromFloat(c.cfg.MaxBet) }
func (c *bingoConfig) PoolSize() int           { return c.cfg.PoolSize }
func (c *bingoConfig) DrawCount() int          { return c.cfg.DrawCount }

func (c *bingoConfig) Patterns() payout.PatternTable {
	table := make(payout.PatternTable, len(c.cfg.Patterns))
	for name, mult := range c.cfg.Patterns {
		table[name] = decimal.NewFromFloat(mult)
	}
	return table
}

// --- Лото ---

type lottoConfig struct {
	cfg    lottoYAML
	window time.Duration
}

func NewLottoConfigFromYAML(path string) (config.LottoConfig, error) {
	file, err := loadGamesFile(path)
	if err != nil {
		return nil, err
	}
	if file.Lotto == nil {
		return nil, errors.New("lotto config not found")
	}
	if file.Lotto.MainPool <= 0 || file.Lotto.MainPicks <= 0 || file.Lotto.BonusPool <= 0 ||
		file.Lotto.BonusPicks <= 0 || len(file.Lotto.Tiers) == 0 {
		return nil, errors.New("invalid lotto config")
	}

	window, err := time.ParseDuration(file.Lotto.DrawWindow)
	if err != nil {
		return nil, errors.New("invalid lotto draw window: " + err.Error())
	}

	return &lottoConfig{cfg: *file.Lotto, window: window}, nil
}

func (c *lottoConfig) GameID() string            { return c.cfg.GameID }
func (c *lottoConfig) MinBet() decimal.Decimal   { return decimal.NewFromFloat(c.cfg.MinBet) }
func (c *lottoConfig) MaxBet() decimal.Decimal   { return decimal.NewFromFloat(c.cfg.MaxBet) }
func (c *lottoConfig) MainPool() int             { return c.cfg.MainPool }
func (c *lottoConfig) MainPicks() int            { return c.cfg.MainPicks }
func (c *lottoConfig) BonusPool() int            { return c.cfg.BonusPool }
func (c *lottoConfig) BonusPicks() int           { return c.cfg.BonusPicks }
func (c *lottoConfig) Jackpot() decimal.Decimal  { return decimal.NewFromFloat(c.cfg.Jackpot) }
func (c *lottoConfig) DrawWindow() time.Duration { return c.window }

func (c *lottoConfig) Tiers() payout.TierRules {
	rules := make(payout.TierRules, 0, len(c.cfg.Tiers))
	for _, t := range c.cfg.Tiers {
		rules = append(rules, payout.TierRule{
			Name:        t.Name,
			MainMatches: t.MainMatches,
			NeedBonus:   t.NeedBonus,
			Multiplier:  decimal.NewFromFloat(t.Multiplier),
			Jackpot:     t.Jackpot,
		})
	}
	return rules
}
