package sudoku

import "math/bits"

/*
 * The deduction rules. Each one walks the shared views, eliminates
 * candidates in place and returns how many cell reductions it made. A
 * rule never grows a candidate set, and a rule applied to a state it
 * cannot improve returns 0 without mutating anything; the propagation
 * loop relies on both.
 */

type rule struct {
	name string
	fn   func(*GameState) int
	// cheap rules run on every pass; the rest are skipped for the
	// remainder of a pass once an earlier rule made progress
	cheap bool
}

var rules = []rule{
	{"eliminateFound", (*GameState).eliminateFound, true},
	{"uniqueCell", (*GameState).uniqueCell, true},
	{"nakedTuple", (*GameState).nakedTuple, false},
	{"hiddenTuple", (*GameState).hiddenTuple, false},
	{"lockedCandidates", (*GameState).lockedCandidates, false},
	{"xWing", (*GameState).xWing, false},
	{"swordfish", (*GameState).swordfish, false},
}

// eliminateFound: once a cell of a nine is pinned to a digit, no other
// cell of that nine can hold it.
func (g *GameState) eliminateFound() int {
	count := 0
	for _, nine := range &groups {
		for _, i := range nine {
			found := g.cells[i]
			if !found.Single() {
				continue
			}
			for _, j := range nine {
				if j != i && g.cells[j]&found != 0 {
					g.cells[j] &^= found
					count++
				}
			}
		}
	}
	return count
}

// uniqueCell: if a digit fits only one cell of a nine, that cell must
// hold it.
func (g *GameState) uniqueCell() int {
	count := 0
	for _, nine := range &groups {
		for d := 1; d <= 9; d++ {
			at, n := -1, 0
			for _, i := range nine {
				if g.cells[i].Has(d) {
					at = i
					n++
				}
			}
			if n == 1 && g.cells[at].Count() > 1 {
				g.cells[at] = SetOf(d)
				count++
			}
		}
	}
	return count
}

// nakedTuple: if a k-digit cell subsumes the candidate sets of exactly
// k cells of its nine (itself included), those k digits are locked into
// those k cells and can be dropped from the rest of the nine.
func (g *GameState) nakedTuple() int {
	count := 0
	for _, nine := range &groups {
		for _, i := range nine {
			cell := g.cells[i]
			k := cell.Count()
			if k <= 1 {
				continue
			}
			var subsumed [9]bool
			n := 0
			for x, j := range nine {
				if g.cells[j]&^cell == 0 {
					subsumed[x] = true
					n++
				}
			}
			if n != k {
				continue
			}
			for x, j := range nine {
				if !subsumed[x] && g.cells[j]&cell != 0 {
					g.cells[j] &^= cell
					count++
				}
			}
		}
	}
	return count
}

// hiddenTuple: the dual. If a k-digit set is contained in exactly k
// cells of a nine and no other cell even intersects it, those k cells
// are confined to the k digits; strip their extras.
func (g *GameState) hiddenTuple() int {
	count := 0
	for _, nine := range &groups {
		for _, i := range nine {
			cell := g.cells[i]
			k := cell.Count()
			if k <= 1 {
				continue
			}
			var super [9]bool
			n, partial := 0, false
			for x, j := range nine {
				other := g.cells[j]
				if cell&^other == 0 {
					super[x] = true
					n++
				} else if cell&other != 0 {
					partial = true
					break
				}
			}
			if partial || n != k {
				continue
			}
			for x, j := range nine {
				if super[x] && g.cells[j].Count() > k {
					g.cells[j] &= cell
					count++
				}
			}
		}
	}
	return count
}

// lockedCandidates: a digit open in a triplet must appear in both of
// its sister sets or in neither; if it is possible in only one sister
// set, it is forced inside the triplet and leaves that sister set.
func (g *GameState) lockedCandidates() int {
	count := 0
	for ti := range triplets {
		t := &triplets[ti]
		var open, inLine, inBox CellSet
		for _, i := range t.cells {
			if g.cells[i].Count() > 1 {
				open |= g.cells[i]
			}
		}
		for _, i := range t.line {
			inLine |= g.cells[i]
		}
		for _, i := range t.box {
			inBox |= g.cells[i]
		}
		for d := 1; d <= 9; d++ {
			if !open.Has(d) {
				continue
			}
			if inLine.Has(d) && !inBox.Has(d) {
				for _, i := range t.line {
					if g.cells[i].Has(d) {
						g.cells[i] = g.cells[i].Without(d)
						count++
					}
				}
			}
			if inBox.Has(d) && !inLine.Has(d) {
				for _, i := range t.box {
					if g.cells[i].Has(d) {
						g.cells[i] = g.cells[i].Without(d)
						count++
					}
				}
			}
		}
	}
	return count
}

// positions returns the 0..8 offsets within a line whose cells admit
// the digit, as a 9-bit mask. With unsolvedOnly set, determined cells
// do not count as positions.
func (g *GameState) positions(line *[9]int, d int, unsolvedOnly bool) uint16 {
	var mask uint16
	for x, i := range line {
		if g.cells[i].Has(d) && (!unsolvedOnly || g.cells[i].Count() > 1) {
			mask |= 1 << x
		}
	}
	return mask
}

// xWing: a digit confined to the same two positions in each of two
// parallel lines is pinned to those four cells; it disappears from the
// rest of the two perpendicular lines.
func (g *GameState) xWing() int {
	count := 0
	count += g.xWingPair(groups[0:9], groups[9:18])
	count += g.xWingPair(groups[9:18], groups[0:9])
	return count
}

func (g *GameState) xWingPair(lines, perps [][9]int) int {
	count := 0
	for a := 0; a < 8; a++ {
		for b := a + 1; b < 9; b++ {
			for d := 1; d <= 9; d++ {
				p := g.positions(&lines[a], d, false)
				if popcount(p) != 2 || p != g.positions(&lines[b], d, false) {
					continue
				}
				x1, x2 := twoBits(p)
				keep := [4]int{
					lines[a][x1], lines[a][x2],
					lines[b][x1], lines[b][x2],
				}
				for _, x := range [2]int{x1, x2} {
					for _, j := range perps[x] {
						if g.cells[j].Has(d) && j != keep[0] && j != keep[1] &&
							j != keep[2] && j != keep[3] {
							g.cells[j] = g.cells[j].Without(d)
							count++
						}
					}
				}
			}
		}
	}
	return count
}

// swordfish: the three-line generalization of xWing. The positions are
// taken over open cells only; each line needs at least two of them and
// the union across the trio must be exactly three.
func (g *GameState) swordfish() int {
	count := 0
	count += g.swordfishTrio(groups[0:9], groups[9:18])
	count += g.swordfishTrio(groups[9:18], groups[0:9])
	return count
}

func (g *GameState) swordfishTrio(lines, perps [][9]int) int {
	count := 0
	for a := 0; a < 7; a++ {
		for b := a + 1; b < 8; b++ {
			for c := b + 1; c < 9; c++ {
				for d := 1; d <= 9; d++ {
					p1 := g.positions(&lines[a], d, true)
					p2 := g.positions(&lines[b], d, true)
					p3 := g.positions(&lines[c], d, true)
					if popcount(p1) < 2 || popcount(p2) < 2 || popcount(p3) < 2 {
						continue
					}
					union := p1 | p2 | p3
					if popcount(union) != 3 {
						continue
					}
					// keep cells are the trio's cells at the union
					// positions, identified by index
					isKeep := func(j int) bool {
						for _, line := range [3]*[9]int{&lines[a], &lines[b], &lines[c]} {
							for x, i := range line {
								if union&(1<<x) != 0 && i == j {
									return true
								}
							}
						}
						return false
					}
					for x := 0; x < 9; x++ {
						if union&(1<<x) == 0 {
							continue
						}
						for _, j := range perps[x] {
							if g.cells[j].Has(d) && !isKeep(j) {
								g.cells[j] = g.cells[j].Without(d)
								count++
							}
						}
					}
				}
			}
		}
	}
	return count
}

func popcount(m uint16) int {
	return bits.OnesCount16(m)
}

// twoBits returns the offsets of the two set bits of a two-bit mask.
func twoBits(m uint16) (int, int) {
	first := bits.TrailingZeros16(m)
	second := bits.TrailingZeros16(m &^ (1 << first))
	return first, second
}
