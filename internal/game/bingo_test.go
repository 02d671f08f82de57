package game

import (
	"testing"

	"gamehall_backend/internal/payout"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bingoTestConfig() BingoConfig {
	return BingoConfig{
		MinBet:    decimal.NewFromInt(1),
		MaxBet:    decimal.NewFromInt(100),
		PoolSize:  75,
		DrawCount: 30,
		Patterns: payout.PatternTable{
			PatternFullCard: decimal.NewFromInt(500),
			PatternDiagonal: decimal.NewFromInt(25),
			PatternCorners:  decimal.NewFromInt(15),
			PatternColumn:   decimal.NewFromInt(10),
			PatternRow:      decimal.NewFromInt(10),
		},
	}
}

// scriptedCardProvider Пять одинаковых тиражей по колонкам дают карточку:
// колонка j содержит 15j+1 .. 15j+5 сверху вниз, центр свободный
func scriptedCardProvider() *scriptProvider {
	return &scriptProvider{draws: [][]int{
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
	}}
}

func newTestBingoSession(t *testing.T) *BingoSession {
	t.Helper()
	s, err := NewBingoSession("bingo", bingoTestConfig(), scriptedCardProvider())
	require.NoError(t, err)
	return s
}

func TestBingoCardLayout(t *testing.T) {
	s := newTestBingoSession(t)
	card := s.Card()

	// Колонка j лежит в диапазоне [15j+1, 15j+15]
	for col := 0; col < 5; col++ {
		for row := 0; row < 5; row++ {
			if row == 2 && col == 2 {
				assert.Equal(t, 0, card[row][col], "center cell is free")
				continue
			}
			assert.GreaterOrEqual(t, card[row][col], 15*col+1)
			assert.LessOrEqual(t, card[row][col], 15*col+15)
		}
	}
}

func TestBingoGeneratedCardHasDistinctColumns(t *testing.T) {
	s, err := NewBingoSession("bingo", bingoTestConfig(), &provider49{})
	require.NoError(t, err)

	card := s.Card()
	for col := 0; col < 5; col++ {
		seen := make(map[int]struct{})
		for row := 0; row < 5; row++ {
			if card[row][col] == 0 {
				continue
			}
			_, dup := seen[card[row][col]]
			assert.False(t, dup, "duplicate in column %d", col)
			seen[card[row][col]] = struct{}{}
		}
	}
}

// provider49 Детерминированная перестановка без повторов для генерации карточки
type provider49 struct{}

func (provider49) DrawNumbers(poolSize, count int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = poolSize - i
	}
	return out, nil
}

func TestBingoMarkRules(t *testing.T) {
	s := newTestBingoSession(t)

	require.NoError(t, s.Mark(0, 0))
	require.NoError(t, s.Mark(0, 0)) // повторная отметка — no-op
	assert.Len(t, s.Marked(), 1)

	// Свободная ячейка не отмечается
	require.NoError(t, s.Mark(2, 2))
	assert.Len(t, s.Marked(), 1)

	assert.ErrorIs(t, s.Mark(-1, 0), ErrInvalidSelection)
	assert.ErrorIs(t, s.Mark(0, 5), ErrInvalidSelection)

	require.NoError(t, s.Unmark(0, 0))
	assert.Empty(t, s.Marked())

	require.NoError(t, s.Mark(1, 1))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Marked())
}

func TestBingoMarkedSortedByPosition(t *testing.T) {
	s := newTestBingoSession(t)

	for _, pos := range [][2]int{{3, 1}, {0, 2}, {3, 0}, {1, 1}} {
		require.NoError(t, s.Mark(pos[0], pos[1]))
	}

	want := [][2]int{{0, 2}, {1, 1}, {3, 0}, {3, 1}}
	assert.Equal(t, want, s.Marked())
	assert.Equal(t, want, s.Marked())
}

func TestBingoLifecycle(t *testing.T) {
	s := newTestBingoSession(t)

	require.NoError(t, s.Commit(decimal.NewFromInt(5)))
	assert.Equal(t, StatusPlaying, s.Status())
	assert.False(t, s.IsOpen())

	assert.ErrorIs(t, s.Mark(0, 0), ErrInvalidStateTransition)
	assert.ErrorIs(t, s.Commit(decimal.NewFromInt(5)), ErrInvalidStateTransition)

	p := &scriptProvider{draws: [][]int{{1, 2, 3}}}
	first, err := s.Draw(p)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, s.Status())

	second, err := s.Draw(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.calls)
}

func TestBingoRowWin(t *testing.T) {
	s := newTestBingoSession(t)

	// Верхняя строка: 1, 16, 31, 46, 61
	for col := 0; col < 5; col++ {
		require.NoError(t, s.Mark(0, col))
	}
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))

	_, err := s.Draw(&scriptProvider{draws: [][]int{{1, 16, 31, 46, 61}}})
	require.NoError(t, err)

	res, err := s.Evaluate()
	require.NoError(t, err)
	require.NotNil(t, res.Bingo)
	assert.Equal(t, PatternRow, res.Bingo.Pattern)
	assert.True(t, res.Payout.Equal(decimal.NewFromInt(20)))
}

func TestBingoPatternPriority(t *testing.T) {
	s := newTestBingoSession(t)

	// Закрываем и главную диагональ, и среднюю строку: платит диагональ
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Mark(i, i))
		require.NoError(t, s.Mark(2, i))
	}
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))

	// Диагональ: 1, 17, центр свободный, 49, 65; строка: 3, 18, 48, 63
	_, err := s.Draw(&scriptProvider{draws: [][]int{{1, 17, 49, 65, 3, 18, 48, 63}}})
	require.NoError(t, err)

	res, err := s.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, PatternDiagonal, res.Bingo.Pattern)
	assert.True(t, res.Payout.Equal(decimal.NewFromInt(50)))
}

func TestBingoUnmarkedNumberDoesNotCount(t *testing.T) {
	s := newTestBingoSession(t)

	// Отмечены все кроме последней ячейки строки
	for col := 0; col < 4; col++ {
		require.NoError(t, s.Mark(0, col))
	}
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))

	// Число 61 вытянуто, но ячейка (0,4) не отмечена — строка не закрыта
	_, err := s.Draw(&scriptProvider{draws: [][]int{{1, 16, 31, 46, 61}}})
	require.NoError(t, err)

	res, err := s.Evaluate()
	require.NoError(t, err)
	assert.Empty(t, res.Bingo.Pattern)
	assert.True(t, res.Payout.IsZero())
}
