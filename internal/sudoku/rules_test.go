package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blank returns a state with every candidate still open.
func blank() *GameState {
	return NewGameState(Puzzle{})
}

func TestEliminateFound(t *testing.T) {
	g := blank()
	g.cells[cellAt(0, 0)] = SetOf(5)

	n := g.eliminateFound()

	// 8 row mates, 8 column mates, 4 box mates not already covered
	assert.Equal(t, 20, n)
	assert.False(t, g.Cell(0, 8).Has(5))
	assert.False(t, g.Cell(8, 0).Has(5))
	assert.False(t, g.Cell(2, 2).Has(5))
	assert.True(t, g.Cell(4, 4).Has(5))
	assert.Equal(t, SetOf(5), g.Cell(0, 0))

	// settled state: nothing more to do
	assert.Equal(t, 0, g.eliminateFound())
}

func TestEliminateFoundContradiction(t *testing.T) {
	g := blank()
	g.cells[cellAt(3, 1)] = SetOf(9)
	g.cells[cellAt(3, 7)] = SetOf(9)

	g.eliminateFound()

	// the first given of the pair wipes out the second
	assert.Equal(t, SetOf(9), g.Cell(3, 1))
	assert.Equal(t, CellSet(0), g.Cell(3, 7))

	g = blank()
	g.cells[cellAt(3, 1)] = SetOf(9)
	g.cells[cellAt(3, 7)] = SetOf(9)
	assert.Equal(t, Contradiction, g.Propagate(nil))
}

func TestUniqueCell(t *testing.T) {
	g := blank()
	for c := 1; c < 9; c++ {
		g.cells[cellAt(0, c)] = AllDigits.Without(7)
	}

	n := g.uniqueCell()

	assert.Equal(t, 1, n)
	assert.Equal(t, SetOf(7), g.Cell(0, 0))
	assert.Equal(t, 0, g.uniqueCell())
}

func TestNakedTuple(t *testing.T) {
	g := blank()
	g.cells[cellAt(0, 0)] = SetOf(1, 2)
	g.cells[cellAt(0, 1)] = SetOf(1, 2)

	n := g.nakedTuple()

	// 7 cells in the row, then 6 more in the box
	assert.Equal(t, 13, n)
	assert.False(t, g.Cell(0, 5).Has(1))
	assert.False(t, g.Cell(0, 5).Has(2))
	assert.False(t, g.Cell(1, 1).Has(1))
	assert.False(t, g.Cell(2, 2).Has(2))
	// the pair itself is untouched, as is the rest of column 0
	assert.Equal(t, SetOf(1, 2), g.Cell(0, 0))
	assert.Equal(t, SetOf(1, 2), g.Cell(0, 1))
	assert.True(t, g.Cell(3, 0).Has(1))

	assert.Equal(t, 0, g.nakedTuple())
}

func TestHiddenTuple(t *testing.T) {
	g := blank()
	g.cells[cellAt(0, 0)] = SetOf(1, 2)
	for c := 2; c < 9; c++ {
		g.cells[cellAt(0, c)] = SetOf(3, 4, 5, 6, 7, 8, 9)
	}
	// digits 1 and 2 fit only cells (0,0) and (0,1); (0,1) must shed
	// everything else

	n := g.hiddenTuple()

	assert.Equal(t, 1, n)
	assert.Equal(t, SetOf(1, 2), g.Cell(0, 1))
	assert.Equal(t, 0, g.hiddenTuple())
}

func TestLockedCandidates(t *testing.T) {
	g := blank()
	for c := 3; c < 9; c++ {
		g.cells[cellAt(0, c)] = SetOf(1, 2, 3, 4, 5, 6)
	}
	// digits 7, 8, 9 of row 0 are locked into the first triplet, so
	// they cannot appear elsewhere in box 0

	n := g.lockedCandidates()

	assert.Equal(t, 18, n)
	for _, d := range []int{7, 8, 9} {
		assert.False(t, g.Cell(1, 0).Has(d))
		assert.False(t, g.Cell(2, 2).Has(d))
		assert.True(t, g.Cell(0, 1).Has(d))
		assert.True(t, g.Cell(3, 0).Has(d))
	}
	assert.Equal(t, 0, g.lockedCandidates())
}

func TestXWing(t *testing.T) {
	g := blank()
	for c := range 9 {
		if c != 3 && c != 7 {
			g.cells[cellAt(2, c)] = AllDigits.Without(5)
			g.cells[cellAt(6, c)] = AllDigits.Without(5)
		}
	}
	// digit 5 sits at columns 3 and 7 in both row 2 and row 6

	n := g.xWing()

	// 7 foreign cells in each of the two columns
	assert.Equal(t, 14, n)
	assert.False(t, g.Cell(0, 3).Has(5))
	assert.False(t, g.Cell(8, 7).Has(5))
	assert.True(t, g.Cell(2, 3).Has(5))
	assert.True(t, g.Cell(6, 7).Has(5))
	assert.True(t, g.Cell(0, 0).Has(5))

	assert.Equal(t, 0, g.xWing())
}

func TestSwordfish(t *testing.T) {
	g := blank()
	for _, r := range []int{1, 4, 7} {
		for c := range 9 {
			if c != 2 && c != 5 && c != 8 {
				g.cells[cellAt(r, c)] = AllDigits.Without(4)
			}
		}
	}
	// digit 4 confined to columns 2, 5 and 8 across rows 1, 4 and 7

	n := g.swordfish()

	// 6 foreign cells in each of the three columns
	assert.Equal(t, 18, n)
	assert.False(t, g.Cell(0, 2).Has(4))
	assert.False(t, g.Cell(8, 5).Has(4))
	assert.False(t, g.Cell(3, 8).Has(4))
	assert.True(t, g.Cell(1, 2).Has(4))
	assert.True(t, g.Cell(7, 8).Has(4))
	assert.True(t, g.Cell(0, 0).Has(4))

	assert.Equal(t, 0, g.swordfish())
}

// Within a propagation run no rule may ever grow a candidate set; the
// fixpoint loop's termination depends on it.
func TestCandidateMonotonicity(t *testing.T) {
	p, err := ParsePuzzle(wikiPuzzle)
	require.NoError(t, err)
	g := NewGameState(p)

	prev := g.cells
	for pass := 0; pass < 100; pass++ {
		count := 0
		for _, rule := range rules {
			count += rule.fn(g)
			for i := range g.cells {
				require.Zero(t, g.cells[i]&^prev[i],
					"%s grew cell %d from %v to %v",
					rule.name, i, prev[i], g.cells[i])
			}
			prev = g.cells
		}
		if count == 0 {
			break
		}
	}
}

// Every rule must be a no-op on a state already at its fixpoint.
func TestRulesIdleAtFixpoint(t *testing.T) {
	p, err := ParsePuzzle(demoPuzzle)
	require.NoError(t, err)
	g := NewGameState(p)
	g.Propagate(nil)

	for _, rule := range rules {
		before := g.cells
		assert.Zero(t, rule.fn(g), rule.name)
		assert.Equal(t, before, g.cells, rule.name)
	}
}
