package slots

// Payline is an ordered run of three row-major cell indices into a
// machine's grid.
type Payline [3]int

// LineResult records one winning payline for a spin. Line is 1-based
// for display.
type LineResult struct {
	Line    int
	Symbols [3]Symbol
	Payout  int
}

// EvaluateLines scores every payline of the machine against the grid
// and returns the winning lines plus the summed multiplier. Lines are
// independent and additive; one spin can win on several at once. The
// evaluation is a pure function of the grid and the machine's tables.
func (m *Machine) EvaluateLines(grid Grid) ([]LineResult, int) {
	var wins []LineResult
	total := 0
	for i, line := range m.Paylines {
		symbols := [3]Symbol{grid[line[0]], grid[line[1]], grid[line[2]]}
		payout := m.checkLine(symbols)
		if payout > 0 {
			wins = append(wins, LineResult{Line: i + 1, Symbols: symbols, Payout: payout})
			total += payout
		}
	}
	return wins, total
}

// checkLine applies the match rules to one line's symbols:
//
//   - all three wild: the wild's own table entry (the top combination)
//   - uniform non-wild run: that symbol's entry
//   - one or two wilds whose non-wild remainder agrees: the remainder's
//     entry (wilds substitute for the majority symbol)
//   - anything else, including wilds alongside two differing symbols: 0
func (m *Machine) checkLine(s [3]Symbol) int {
	if m.Wild != "" {
		wilds := 0
		var base Symbol
		uniform := true
		for _, sym := range s {
			if sym == m.Wild {
				wilds++
				continue
			}
			if base == "" {
				base = sym
			} else if sym != base {
				uniform = false
			}
		}
		switch {
		case wilds == 3:
			return m.Paytable.Payout(m.Wild)
		case wilds > 0 && uniform:
			return m.Paytable.Payout(base)
		case wilds > 0:
			return 0
		}
	}
	if s[0] == s[1] && s[1] == s[2] {
		return m.Paytable.Payout(s[0])
	}
	return 0
}
