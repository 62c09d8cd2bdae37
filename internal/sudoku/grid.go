package sudoku

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Puzzle is a 9x9 grid of digits, 0 meaning blank.
type Puzzle [9][9]int

// GameState holds the only owned copy of the 81 candidate sets. Rows,
// columns, boxes and triplets are precomputed index tables shared by
// every state, so a cell mutated through one view is instantly visible
// through all others, and cloning a state is a copy of the flat array.
type GameState struct {
	cells [81]CellSet
}

func cellAt(row, col int) int { return row*9 + col }

/*
 * The 27 "nines": groups[0:9] are rows, groups[9:18] are columns,
 * groups[18:27] are the 3x3 boxes in row-major order. Each entry is an
 * index into GameState.cells.
 */
var groups = buildGroups()

func buildGroups() (g [27][9]int) {
	for r := range 9 {
		for c := range 9 {
			g[r][c] = cellAt(r, c)
			g[9+c][r] = cellAt(r, c)
		}
	}
	for b := range 9 {
		br, bc := (b/3)*3, (b%3)*3
		for i := range 9 {
			g[18+b][i] = cellAt(br+i/3, bc+i%3)
		}
	}
	return
}

// groupName renders a group index as R0..R8, C0..C8 or S0..S8.
func groupName(i int) string {
	return string("RCS"[i/9]) + strconv.Itoa(i%9)
}

/*
 * A triplet is the 3-cell intersection of a box with a row or column.
 * Its line sisters are the other 6 cells of the same row/column, its
 * box sisters the other 6 cells of the same box. There are 54 of them:
 * triplets[0:27] cut along rows, triplets[27:54] along columns.
 */
type triplet struct {
	cells [3]int
	line  [6]int
	box   [6]int
}

var triplets = buildTriplets()

func buildTriplets() [54]triplet {
	var out [54]triplet
	n := 0
	for r := range 9 {
		for t := 0; t < 9; t += 3 {
			tr := &out[n]
			n++
			for i := range 3 {
				tr.cells[i] = cellAt(r, t+i)
			}
			j := 0
			for c := range 9 {
				if c < t || c >= t+3 {
					tr.line[j] = cellAt(r, c)
					j++
				}
			}
			j = 0
			for rr := (r / 3) * 3; rr < (r/3)*3+3; rr++ {
				if rr == r {
					continue
				}
				for i := range 3 {
					tr.box[j] = cellAt(rr, t+i)
					j++
				}
			}
		}
	}
	for c := range 9 {
		for t := 0; t < 9; t += 3 {
			tr := &out[n]
			n++
			for i := range 3 {
				tr.cells[i] = cellAt(t+i, c)
			}
			j := 0
			for r := range 9 {
				if r < t || r >= t+3 {
					tr.line[j] = cellAt(r, c)
					j++
				}
			}
			j = 0
			for i := range 3 {
				for cc := (c / 3) * 3; cc < (c/3)*3+3; cc++ {
					if cc == c {
						continue
					}
					tr.box[j] = cellAt(t+i, cc)
					j++
				}
			}
		}
	}
	return out
}

// tripletName renders a triplet index as e.g. R4S5 (row 4 within box 5)
// or C2S6 (column 2 within box 6).
func tripletName(i int) string {
	if i < 27 {
		r, t := i/3, i%3
		return "R" + strconv.Itoa(r) + "S" + strconv.Itoa((r/3)*3+t)
	}
	i -= 27
	c, t := i/3, i%3
	return "C" + strconv.Itoa(c) + "S" + strconv.Itoa(t*3+c/3)
}

// NewGameState builds the initial candidate sets: a given digit pins
// its cell to a singleton, a blank cell admits all nine digits.
func NewGameState(p Puzzle) *GameState {
	g := &GameState{}
	for r := range 9 {
		for c := range 9 {
			if d := p[r][c]; d == 0 {
				g.cells[cellAt(r, c)] = AllDigits
			} else {
				g.cells[cellAt(r, c)] = SetOf(d)
			}
		}
	}
	return g
}

func (g *GameState) Clone() *GameState {
	clone := *g
	return &clone
}

func (g *GameState) Cell(row, col int) CellSet {
	return g.cells[cellAt(row, col)]
}

// CandidateCount is the total size of all 81 candidate sets. It is 81
// exactly when every cell is a singleton.
func (g *GameState) CandidateCount() int {
	total := 0
	for _, cell := range g.cells {
		total += cell.Count()
	}
	return total
}

// firstUndetermined returns the row-major index of the first cell with
// more than one candidate left, or -1 if every cell is determined.
func (g *GameState) firstUndetermined() int {
	for i, cell := range g.cells {
		if cell.Count() > 1 {
			return i
		}
	}
	return -1
}

// Puzzle reads the determined digits back out of the state. Cells not
// yet pinned to a single digit come out as 0.
func (g *GameState) Puzzle() (p Puzzle) {
	for r := range 9 {
		for c := range 9 {
			if cell := g.cells[cellAt(r, c)]; cell.Single() {
				p[r][c] = cell.Digit()
			}
		}
	}
	return
}

// String renders the simple status form: digits for determined cells,
// '?' for open cells, 'X' for a cell with no candidates left.
func (g *GameState) String() string {
	var b strings.Builder
	for r := range 9 {
		for c := range 9 {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := g.cells[cellAt(r, c)]
			switch {
			case cell == 0:
				b.WriteByte('X')
			case cell.Single():
				b.WriteByte('0' + byte(cell.Digit()))
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders a puzzle as its 81-character line form, blanks as 0.
func (p Puzzle) String() string {
	var b strings.Builder
	for r := range 9 {
		for c := range 9 {
			b.WriteByte('0' + byte(p[r][c]))
		}
	}
	return b.String()
}
