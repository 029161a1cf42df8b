// Package slots implements the slot machine engine: spinning a grid of
// symbols and scoring it against a machine's paylines, with wild-symbol
// substitution. One parameterised evaluator covers every machine
// variant; the single-line machine is just a 1x3 window with one
// payline and no wild.
package slots

import rand "math/rand/v2"

// Symbol is one reel face. Machines define their own symbol sets; the
// evaluator treats symbols as opaque strings.
type Symbol string

// Paytable maps a three-of-a-kind run to its payout multiplier. Lookups
// for symbols missing from the table pay zero rather than erroring, so a
// misconfigured strip degrades to a losing line.
type Paytable map[Symbol]int

// Payout returns the multiplier for a matched run of the symbol.
func (t Paytable) Payout(s Symbol) int {
	return t[s]
}

// Grid is a spun window of symbols, row-major, Rows*Cols long.
type Grid []Symbol

// Machine describes one slot variant: its window, symbol strip, paytable
// and paylines. Wild is empty for machines without a wild symbol.
type Machine struct {
	Name     string
	Rows     int
	Cols     int
	Symbols  []Symbol
	Paytable Paytable
	Wild     Symbol
	Paylines []Payline
}

// Spin fills the window, drawing every cell independently and uniformly
// from the symbol strip. Cells share no state between spins.
func (m *Machine) Spin(rng *rand.Rand) Grid {
	grid := make(Grid, m.Rows*m.Cols)
	for i := range grid {
		grid[i] = m.Symbols[rng.IntN(len(m.Symbols))]
	}
	return grid
}

// Net returns the balance change for a spin at the given stake: the
// whole stake is lost on a zero multiplier, otherwise the winnings less
// the stake.
func Net(bet, multiplier int) int {
	if multiplier <= 0 {
		return -bet
	}
	return bet*multiplier - bet
}

// SimpleSlots is the single-line 1x3 machine with no wild.
func SimpleSlots() *Machine {
	return &Machine{
		Name:    "simple-slots",
		Rows:    1,
		Cols:    3,
		Symbols: []Symbol{"🍒", "🍋", "🍊", "🔔", "BAR", "7"},
		Paytable: Paytable{
			"🍒": 2, "🍋": 3, "🍊": 4, "🔔": 5, "BAR": 10, "7": 20,
		},
		Paylines: []Payline{{0, 1, 2}},
	}
}

// TripleLine is the 3x3 machine paying the three rows and both
// diagonals, with ⭐ wild.
func TripleLine() *Machine {
	return &Machine{
		Name:    "triple-line",
		Rows:    3,
		Cols:    3,
		Symbols: []Symbol{"🍒", "🍋", "🍊", "🔔", "⛔", "♿", "⭐"},
		Paytable: Paytable{
			"🍒": 2, "🍋": 3, "🍊": 5, "🔔": 7, "⛔": 10, "♿": 15, "⭐": 25,
		},
		Wild: "⭐",
		Paylines: []Payline{
			{0, 1, 2},
			{3, 4, 5},
			{6, 7, 8},
			{0, 4, 8},
			{2, 4, 6},
		},
	}
}
