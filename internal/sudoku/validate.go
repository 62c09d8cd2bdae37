package sudoku

import (
	"fmt"
	"sort"
)

/*
 * Input validation. The solver itself assumes a structurally valid
 * puzzle; everything arriving from the outside goes through here
 * first.
 */

var (
	ErrNotNineByNine = fmt.Errorf("puzzle is not a 9x9 grid")
	ErrBadLength     = fmt.Errorf("puzzle string must be 81 characters")
)

// FromRows checks shape and value range of a raw grid (as decoded from
// JSON, say) and converts it into a Puzzle.
func FromRows(rows [][]int) (Puzzle, error) {
	var p Puzzle
	if len(rows) != 9 {
		return p, ErrNotNineByNine
	}
	for _, row := range rows {
		if len(row) != 9 {
			return p, ErrNotNineByNine
		}
	}

	bad := map[int]bool{}
	for r, row := range rows {
		for c, v := range row {
			if v < 0 || v > 9 {
				bad[v] = true
				continue
			}
			p[r][c] = v
		}
	}
	if len(bad) > 0 {
		vals := make([]int, 0, len(bad))
		for v := range bad {
			vals = append(vals, v)
		}
		sort.Ints(vals)
		return p, fmt.Errorf("invalid value(s) in puzzle: %v", vals)
	}
	return p, nil
}

// ParsePuzzle reads the 81-character line form, row-major. '0', '.'
// and '_' all mean blank.
func ParsePuzzle(s string) (Puzzle, error) {
	var p Puzzle
	if len(s) != 81 {
		return p, ErrBadLength
	}
	for i := 0; i < 81; i++ {
		switch ch := s[i]; {
		case ch == '0' || ch == '.' || ch == '_':
			// blank
		case '1' <= ch && ch <= '9':
			p[i/9][i%9] = int(ch - '0')
		default:
			return p, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return p, nil
}
