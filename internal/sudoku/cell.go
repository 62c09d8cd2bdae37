package sudoku

import (
	"math/bits"
	"strconv"
	"strings"
)

// CellSet is a 9-bit mask of the digits still possible for one cell.
// Bit 0 stands for digit 1, bit 8 for digit 9.
type CellSet uint16

const AllDigits CellSet = (1 << 9) - 1

func SetOf(digits ...int) CellSet {
	var s CellSet
	for _, d := range digits {
		s |= 1 << (d - 1)
	}
	return s
}

func (s CellSet) Has(digit int) bool {
	return s&(1<<(digit-1)) != 0
}

func (s CellSet) Without(digit int) CellSet {
	return s &^ (1 << (digit - 1))
}

func (s CellSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Single reports whether the cell is pinned to exactly one digit.
func (s CellSet) Single() bool {
	return s != 0 && s&(s-1) == 0
}

// Digit returns the lowest digit in the set, or 0 for an empty set.
func (s CellSet) Digit() int {
	if s == 0 {
		return 0
	}
	return bits.TrailingZeros16(uint16(s)) + 1
}

// Digits lists the members in increasing order.
func (s CellSet) Digits() []int {
	out := make([]int, 0, s.Count())
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s CellSet) String() string {
	if s == 0 {
		return "{}"
	}
	parts := make([]string, 0, s.Count())
	for _, d := range s.Digits() {
		parts = append(parts, strconv.Itoa(d))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
