package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	rows := make([][]int, 9)
	for r := range rows {
		rows[r] = make([]int, 9)
	}
	rows[0][0] = 5
	rows[8][8] = 9

	p, err := FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 5, p[0][0])
	assert.Equal(t, 9, p[8][8])
	assert.Equal(t, 0, p[4][4])
}

func TestFromRowsBadShape(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"nil", nil},
		{"too few rows", make([][]int, 8)},
		{"ragged row", func() [][]int {
			rows := make([][]int, 9)
			for r := range rows {
				rows[r] = make([]int, 9)
			}
			rows[3] = make([]int, 8)
			return rows
		}()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FromRows(test.rows)
			assert.ErrorIs(t, err, ErrNotNineByNine)
		})
	}
}

func TestFromRowsBadValues(t *testing.T) {
	rows := make([][]int, 9)
	for r := range rows {
		rows[r] = make([]int, 9)
	}
	rows[0][0] = 10
	rows[5][5] = -1

	_, err := FromRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[-1 10]")
}

func TestParsePuzzle(t *testing.T) {
	p, err := ParsePuzzle(wikiPuzzle)
	require.NoError(t, err)
	assert.Equal(t, 5, p[0][0])
	assert.Equal(t, 3, p[0][1])
	assert.Equal(t, 9, p[8][7])
	assert.Equal(t, wikiPuzzle, p.String())
}

func TestParsePuzzleBlankForms(t *testing.T) {
	dotted := "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"
	p1, err := ParsePuzzle(dotted)
	require.NoError(t, err)
	p2, err := ParsePuzzle(wikiPuzzle)
	require.NoError(t, err)
	assert.Equal(t, p2, p1)
}

func TestParsePuzzleErrors(t *testing.T) {
	_, err := ParsePuzzle("123")
	assert.ErrorIs(t, err, ErrBadLength)

	bad := wikiPuzzle[:40] + "x" + wikiPuzzle[41:]
	_, err = ParsePuzzle(bad)
	assert.ErrorContains(t, err, "position 40")
}
