package game

import (
	"sort"

	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/model"
	"gamehall_backend/internal/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Размер карточки и значение свободной ячейки
const (
	bingoGrid = 5
	freeCell  = 0
)

// Имена выигрышных паттернов бинго
const (
	PatternFullCard = "full_card"
	PatternDiagonal = "diagonal"
	PatternCorners  = "corners"
	PatternColumn   = "column"
	PatternRow      = "row"
)

// Порядок проверки паттернов: платит первый совпавший, от старшего к младшему
var patternPriority = []string{
	PatternFullCard,
	PatternDiagonal,
	PatternCorners,
	PatternColumn,
	PatternRow,
}

// BingoConfig Параметры бинго на момент создания сессии
type BingoConfig struct {
	MinBet    decimal.Decimal
	MaxBet    decimal.Decimal
	PoolSize  int
	DrawCount int
	Patterns  payout.PatternTable
}

// BingoSession Сессия бинго: waiting -> playing -> complete.
// Карточка 5x5 генерируется при создании: колонка j содержит числа
// из диапазона [15j+1, 15j+15], центральная ячейка свободная
type BingoSession struct {
	id     string
	gameID string
	cfg    BingoConfig
	status Status
	card   [bingoGrid][bingoGrid]int
	marked map[[2]int]struct{}
	drawn  []int
	wager  decimal.Decimal
}

// NewBingoSession Создать сессию с новой карточкой.
// Провайдер нужен только для генерации карточки
func NewBingoSession(gameID string, cfg BingoConfig, p draw.Provider) (*BingoSession, error) {
	s := &BingoSession{
		id:     uuid.NewString(),
		gameID: gameID,
		cfg:    cfg,
		status: StatusWaiting,
		marked: make(map[[2]int]struct{}),
	}

	// Числа для колонки тянутся из её пятнадцатки без повторов
	colRange := cfg.PoolSize / bingoGrid
	for col := 0; col < bingoGrid; col++ {
		nums, err := p.DrawNumbers(colRange, bingoGrid)
		if err != nil {
			return nil, err
		}
		for row := 0; row < bingoGrid; row++ {
			s.card[row][col] = nums[row] + col*colRange
		}
	}
	s.card[bingoGrid/2][bingoGrid/2] = freeCell

	return s, nil
}

func (s *BingoSession) ID() string              { return s.id }
func (s *BingoSession) GameID() string          { return s.gameID }
func (s *BingoSession) Variant() Variant        { return VariantBingo }
func (s *BingoSession) Status() Status          { return s.status }
func (s *BingoSession) IsOpen() bool            { return s.status == StatusWaiting }
func (s *BingoSession) MinBet() decimal.Decimal { return s.cfg.MinBet }
func (s *BingoSession) MaxBet() decimal.Decimal { return s.cfg.MaxBet }
func (s *BingoSession) Wager() decimal.Decimal  { return s.wager }

// Card Возвращает копию карточки
func (s *BingoSession) Card() [][]int {
	card := make([][]int, bingoGrid)
	for r := 0; r < bingoGrid; r++ {
		card[r] = append([]int(nil), s.card[r][:]...)
	}
	return card
}

// Marked Возвращает отмеченные ячейки, отсортированные по (строка, колонка)
func (s *BingoSession) Marked() [][2]int {
	out := make([][2]int, 0, len(s.marked))
	for pos := range s.marked {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Drawn Возвращает копию вытянутых чисел
func (s *BingoSession) Drawn() []int {
	return append([]int(nil), s.drawn...)
}

// Mark Отмечает ячейку. Свободная ячейка и повторная отметка — no-op
func (s *BingoSession) Mark(row, col int) error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	if row < 0 || row >= bingoGrid || col < 0 || col >= bingoGrid {
		return ErrInvalidSelection
	}
	if s.card[row][col] == freeCell {
		return nil
	}
	s.marked[[2]int{row, col}] = struct{}{}
	return nil
}

// Unmark Снимает отметку с ячейки
func (s *BingoSession) Unmark(row, col int) error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	delete(s.marked, [2]int{row, col})
	return nil
}

// Clear Снимает все отметки
func (s *BingoSession) Clear() error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	s.marked = make(map[[2]int]struct{})
	return nil
}

// Commit Фиксирует ставку, отметки замораживаются
func (s *BingoSession) Commit(wager decimal.Decimal) error {
	if s.status != StatusWaiting {
		return ErrInvalidStateTransition
	}
	s.wager = wager
	s.status = StatusPlaying
	return nil
}

// Draw Выполняет розыгрыш один раз. Повторный вызов возвращает записанный результат
func (s *BingoSession) Draw(p draw.Provider) ([]int, error) {
	switch s.status {
	case StatusPlaying:
		if s.drawn == nil {
			drawn, err := p.DrawNumbers(s.cfg.PoolSize, s.cfg.DrawCount)
			if err != nil {
				return nil, err
			}
			s.drawn = drawn
			s.status = StatusComplete
		}
		return s.Drawn(), nil
	case StatusComplete:
		return s.Drawn(), nil
	default:
		return nil, ErrInvalidStateTransition
	}
}

// covered Ячейка закрыта: свободная, либо отмечена и её число вытянуто
func (s *BingoSession) covered(row, col int) bool {
	if s.card[row][col] == freeCell {
		return true
	}
	if _, ok := s.marked[[2]int{row, col}]; !ok {
		return false
	}
	return contains(s.drawn, s.card[row][col])
}

// Evaluate Ищет первый закрытый паттерн в порядке приоритета.
// Учитываются только паттерны, присутствующие в таблице выплат
func (s *BingoSession) Evaluate() (*Result, error) {
	if s.status != StatusComplete {
		return nil, ErrInvalidStateTransition
	}

	var winner string
	for _, name := range patternPriority {
		if _, active := s.cfg.Patterns[name]; !active {
			continue
		}
		if s.patternCovered(name) {
			winner = name
			break
		}
	}

	mult := decimal.Zero
	if winner != "" {
		mult = s.cfg.Patterns.Multiplier(winner)
	}

	return &Result{
		Payout: mult.Mul(s.wager),
		Bingo: &model.BingoResult{
			Drawn:      s.Drawn(),
			Pattern:    winner,
			Multiplier: mult,
		},
	}, nil
}

// patternCovered Проверяет, закрыт ли хотя бы один вариант паттерна
func (s *BingoSession) patternCovered(name string) bool {
	switch name {
	case PatternFullCard:
		for r := 0; r < bingoGrid; r++ {
			for c := 0; c < bingoGrid; c++ {
				if !s.covered(r, c) {
					return false
				}
			}
		}
		return true
	case PatternDiagonal:
		main, anti := true, true
		for i := 0; i < bingoGrid; i++ {
			if !s.covered(i, i) {
				main = false
			}
			if !s.covered(i, bingoGrid-1-i) {
				anti = false
			}
		}
		return main || anti
	case PatternCorners:
		last := bingoGrid - 1
		return s.covered(0, 0) && s.covered(0, last) &&
			s.covered(last, 0) && s.covered(last, last)
	case PatternColumn:
		for c := 0; c < bingoGrid; c++ {
			full := true
			for r := 0; r < bingoGrid; r++ {
				if !s.covered(r, c) {
					full = false
					break
				}
			}
			if full {
				return true
			}
		}
		return false
	case PatternRow:
		for r := 0; r < bingoGrid; r++ {
			full := true
			for c := 0; c < bingoGrid; c++ {
				if !s.covered(r, c) {
					full = false
					break
				}
			}
			if full {
				return true
			}
		}
		return false
	default:
		return false
	}
}
