package game

import (
	"testing"
	"time"

	"gamehall_backend/internal/payout"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lottoTestConfig() LottoConfig {
	return LottoConfig{
		MinBet:     decimal.NewFromInt(2),
		MaxBet:     decimal.NewFromInt(20),
		MainPool:   49,
		MainPicks:  6,
		BonusPool:  10,
		BonusPicks: 1,
		Tiers: payout.TierRules{
			{Name: "jackpot", MainMatches: 6, Jackpot: true},
			{Name: "tier2", MainMatches: 5, NeedBonus: true, Multiplier: decimal.NewFromInt(50000)},
			{Name: "tier3", MainMatches: 5, Multiplier: decimal.NewFromInt(500)},
			{Name: "tier5", MainMatches: 3, Multiplier: decimal.NewFromInt(5)},
		},
		Jackpot:      decimal.NewFromInt(1000000),
		DrawDeadline: time.Now().Add(5 * time.Minute),
	}
}

func fillTicket(t *testing.T, s *LottoSession) {
	t.Helper()
	for _, n := range []int{1, 2, 3, 4, 5, 6} {
		require.NoError(t, s.SelectMain(n))
	}
	require.NoError(t, s.SelectBonus(7))
}

func TestLottoSelectionRules(t *testing.T) {
	s := NewLottoSession("lotto", lottoTestConfig())

	assert.ErrorIs(t, s.SelectMain(0), ErrInvalidSelection)
	assert.ErrorIs(t, s.SelectMain(50), ErrInvalidSelection)
	assert.ErrorIs(t, s.SelectBonus(11), ErrInvalidSelection)

	fillTicket(t, s)

	// Повтор — no-op, седьмое число — превышение лимита
	require.NoError(t, s.SelectMain(3))
	assert.Len(t, s.MainSelected(), 6)
	assert.ErrorIs(t, s.SelectMain(7), ErrSelectionLimitExceeded)
	assert.ErrorIs(t, s.SelectBonus(8), ErrSelectionLimitExceeded)

	require.NoError(t, s.DeselectMain(6))
	assert.Len(t, s.MainSelected(), 5)

	require.NoError(t, s.Clear())
	assert.Empty(t, s.MainSelected())
	assert.Empty(t, s.BonusSelected())
}

func TestLottoCommitRequiresFullTicket(t *testing.T) {
	s := NewLottoSession("lotto", lottoTestConfig())

	assert.ErrorIs(t, s.Commit(decimal.NewFromInt(2)), ErrIncompleteTicket)

	fillTicket(t, s)
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))
	assert.Equal(t, StatusClosed, s.Status())
	assert.False(t, s.IsOpen())

	assert.ErrorIs(t, s.SelectMain(10), ErrInvalidStateTransition)
	assert.ErrorIs(t, s.Clear(), ErrInvalidStateTransition)
}

func TestLottoQuickPickFillsTicket(t *testing.T) {
	s := NewLottoSession("lotto", lottoTestConfig())

	p := &scriptProvider{draws: [][]int{
		{10, 20, 30, 40, 41, 42},
		{9},
	}}
	require.NoError(t, s.QuickPick(p))

	assert.Equal(t, []int{10, 20, 30, 40, 41, 42}, s.MainSelected())
	assert.Equal(t, []int{9}, s.BonusSelected())
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))
}

func TestLottoDrawIsIdempotent(t *testing.T) {
	s := NewLottoSession("lotto", lottoTestConfig())
	fillTicket(t, s)
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))

	p := &scriptProvider{draws: [][]int{
		{1, 2, 3, 40, 41, 42},
		{7},
	}}
	first, err := s.Draw(p)
	require.NoError(t, err)
	assert.Equal(t, StatusDrawn, s.Status())

	second, err := s.Draw(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, p.calls)
	assert.Equal(t, []int{7}, s.BonusDrawn())
}

func TestLottoEvaluateJackpot(t *testing.T) {
	s := NewLottoSession("lotto", lottoTestConfig())
	fillTicket(t, s)
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))

	_, err := s.Draw(&scriptProvider{draws: [][]int{
		{6, 5, 4, 3, 2, 1},
		{9},
	}})
	require.NoError(t, err)

	res, err := s.Evaluate()
	require.NoError(t, err)
	require.NotNil(t, res.Lotto)

	assert.Equal(t, "jackpot", res.Lotto.Tier)
	assert.True(t, res.Lotto.Jackpot)
	assert.Equal(t, 6, res.Lotto.MainMatches)
	// Джекпот платит фиксированную сумму, а не множитель ставки
	assert.True(t, res.Payout.Equal(decimal.NewFromInt(1000000)))
}

func TestLottoEvaluateBonusTier(t *testing.T) {
	s := NewLottoSession("lotto", lottoTestConfig())
	fillTicket(t, s)
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))

	// Пять совпадений плюс бонусное число
	_, err := s.Draw(&scriptProvider{draws: [][]int{
		{1, 2, 3, 4, 5, 49},
		{7},
	}})
	require.NoError(t, err)

	res, err := s.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, "tier2", res.Lotto.Tier)
	assert.True(t, res.Lotto.BonusMatch)
	assert.True(t, res.Payout.Equal(decimal.NewFromInt(100000)))
}

func TestLottoEvaluateNoTierPaysZero(t *testing.T) {
	s := NewLottoSession("lotto", lottoTestConfig())
	fillTicket(t, s)
	require.NoError(t, s.Commit(decimal.NewFromInt(2)))

	_, err := s.Draw(&scriptProvider{draws: [][]int{
		{1, 2, 40, 41, 42, 43},
		{9},
	}})
	require.NoError(t, err)

	res, err := s.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lotto.MainMatches)
	assert.Empty(t, res.Lotto.Tier)
	assert.True(t, res.Payout.IsZero())
}
