package sudoku

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

func TestGroupTables(t *testing.T) {
	// every group holds 9 distinct cells
	for gi, nine := range groups {
		seen := map[int]bool{}
		for _, i := range nine {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, 81)
			require.False(t, seen[i], "duplicate cell in %s", groupName(gi))
			seen[i] = true
		}
	}

	// every cell belongs to exactly one row, one column and one box
	var membership [81]int
	for _, nine := range groups {
		for _, i := range nine {
			membership[i]++
		}
	}
	for i, n := range membership {
		assert.Equal(t, 3, n, "cell %d", i)
	}
}

func TestGroupNames(t *testing.T) {
	assert.Equal(t, "R0", groupName(0))
	assert.Equal(t, "C0", groupName(9))
	assert.Equal(t, "C8", groupName(17))
	assert.Equal(t, "S4", groupName(22))
}

func TestTripletTables(t *testing.T) {
	inGroup := func(nine [9]int, i int) bool {
		for _, j := range nine {
			if j == i {
				return true
			}
		}
		return false
	}

	for ti, tr := range triplets {
		name := tripletName(ti)

		seen := map[int]bool{}
		for _, i := range tr.cells {
			seen[i] = true
		}
		for _, i := range tr.line {
			require.False(t, seen[i], "%s: line sister overlaps members", name)
			seen[i] = true
		}
		for _, i := range tr.box {
			require.False(t, seen[i], "%s: box sister overlaps members or line", name)
			seen[i] = true
		}
		require.Len(t, seen, 15, name)

		// members plus line sisters form a full row or column;
		// members plus box sisters form a full box
		var line, box [9]int
		if ti < 27 {
			line = groups[tr.cells[0]/9]
		} else {
			line = groups[9+tr.cells[0]%9]
		}
		boxOf := func(i int) int { return (i/9/3)*3 + (i % 9 / 3) }
		box = groups[18+boxOf(tr.cells[0])]

		for _, i := range tr.cells {
			assert.True(t, inGroup(line, i), "%s member %d not on its line", name, i)
			assert.True(t, inGroup(box, i), "%s member %d not in its box", name, i)
		}
		for _, i := range tr.line {
			assert.True(t, inGroup(line, i), "%s line sister %d not on its line", name, i)
		}
		for _, i := range tr.box {
			assert.True(t, inGroup(box, i), "%s box sister %d not in its box", name, i)
		}
	}
}

func TestTripletNames(t *testing.T) {
	assert.Equal(t, "R0S0", tripletName(0))
	assert.Equal(t, "R1S1", tripletName(4))
	assert.Equal(t, "R8S8", tripletName(26))
	assert.Equal(t, "C0S0", tripletName(27))
	assert.Equal(t, "C1S6", tripletName(32))
	assert.Equal(t, "C8S8", tripletName(53))
}

func TestNewGameState(t *testing.T) {
	p, err := ParsePuzzle(wikiPuzzle)
	require.NoError(t, err)

	g := NewGameState(p)
	for r := range 9 {
		for c := range 9 {
			if p[r][c] == 0 {
				assert.Equal(t, AllDigits, g.Cell(r, c))
			} else {
				assert.Equal(t, SetOf(p[r][c]), g.Cell(r, c))
			}
		}
	}
	assert.Equal(t, p, g.Puzzle())
}

func TestCloneIsolation(t *testing.T) {
	p, err := ParsePuzzle(wikiPuzzle)
	require.NoError(t, err)

	parent := NewGameState(p)
	child := parent.Clone()
	sibling := parent.Clone()

	child.cells[2] = SetOf(4)
	child.Propagate(nil)

	assert.Equal(t, AllDigits, parent.cells[2])
	assert.Equal(t, AllDigits, sibling.cells[2])
	assert.Equal(t, NewGameState(p).cells, parent.cells)
	assert.Equal(t, NewGameState(p).cells, sibling.cells)
}

func TestGameStateString(t *testing.T) {
	g := NewGameState(Puzzle{})
	g.cells[0] = SetOf(7)
	g.cells[1] = 0
	s := g.String()
	assert.Equal(t, "7 X ? ? ? ? ? ? ?\n", s[:len("7 X ? ? ? ? ? ? ?\n")])
}
