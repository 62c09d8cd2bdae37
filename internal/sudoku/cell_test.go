package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellSetBasics(t *testing.T) {
	s := SetOf(1, 5, 9)
	assert.True(t, s.Has(1))
	assert.True(t, s.Has(5))
	assert.True(t, s.Has(9))
	assert.False(t, s.Has(2))
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []int{1, 5, 9}, s.Digits())
	assert.Equal(t, "{1 5 9}", s.String())
}

func TestCellSetSingle(t *testing.T) {
	for d := 1; d <= 9; d++ {
		s := SetOf(d)
		assert.True(t, s.Single())
		assert.Equal(t, d, s.Digit())
	}
	assert.False(t, CellSet(0).Single())
	assert.False(t, AllDigits.Single())
	assert.Equal(t, 0, CellSet(0).Digit())
	assert.Equal(t, 9, AllDigits.Count())
}

func TestCellSetWithout(t *testing.T) {
	s := AllDigits
	for d := 1; d <= 8; d++ {
		s = s.Without(d)
	}
	assert.Equal(t, SetOf(9), s)
	// removing an absent digit is a no-op
	assert.Equal(t, SetOf(9), s.Without(3))
}
