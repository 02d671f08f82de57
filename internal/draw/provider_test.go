package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawNumbersDistinctAndInRange(t *testing.T) {
	p := NewProvider()

	drawn, err := p.DrawNumbers(80, 20)
	require.NoError(t, err)
	require.Len(t, drawn, 20)

	seen := make(map[int]struct{}, len(drawn))
	for _, n := range drawn {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 80)
		_, dup := seen[n]
		assert.False(t, dup, "number %d drawn twice", n)
		seen[n] = struct{}{}
	}
}

func TestDrawNumbersFullPool(t *testing.T) {
	p := NewProvider()

	drawn, err := p.DrawNumbers(10, 10)
	require.NoError(t, err)
	require.Len(t, drawn, 10)

	seen := make(map[int]struct{}, len(drawn))
	for _, n := range drawn {
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 10)
}

func TestDrawNumbersSeededDeterminism(t *testing.T) {
	a := NewSeededProvider(42)
	b := NewSeededProvider(42)

	first, err := a.DrawNumbers(49, 6)
	require.NoError(t, err)
	second, err := b.DrawNumbers(49, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDrawNumbersInvalidRange(t *testing.T) {
	p := NewProvider()

	_, err := p.DrawNumbers(10, 11)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = p.DrawNumbers(0, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = p.DrawNumbers(10, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
