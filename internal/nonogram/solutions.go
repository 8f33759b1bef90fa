package nonogram

import "iter"

// ClueSolutions enumerates every boolean line of a given length that
// satisfies a clue, and counts them in closed form without enumerating.
//
// A valid line is fully determined by the lengths of the p+1 gaps around
// its p runs. Pad the line with one mandatory empty cell at each end and
// every gap becomes strictly positive in a padded universe of
// T = n + 2 - X empty cells (X being the sum of the runs). Choosing the p
// divider positions among the T - 1 internal slots is then stars and bars
// with positive parts, giving C(n+1-X, p) lines in total.
type ClueSolutions struct {
	Clue   Clue
	Length int
}

// Solutions is the enumerator for lines of the given length satisfying the
// clue. The value holds no state; every call to All is an independent,
// restartable enumeration.
func Solutions(clue Clue, length int) ClueSolutions {
	return ClueSolutions{Clue: clue, Length: length}
}

// Count is the number of satisfying lines, C(n+1-X, p). It is zero whenever
// the runs cannot fit, and one for an exact fit (n = X + p - 1). The
// degenerate clue counts exactly one line, the all-empty one.
func (cs ClueSolutions) Count() int {
	return binomial(cs.Length+1-cs.Clue.Sum(), len(cs.Clue))
}

// All yields each satisfying line exactly once, ordered by the position of
// the first run, then the second, and so on. Yielded slices are freshly
// allocated; callers may keep them.
func (cs ClueSolutions) All() iter.Seq[[]bool] {
	return func(yield func([]bool) bool) {
		if cs.Length < 0 {
			return
		}

		p := len(cs.Clue)
		total := cs.Length + 2 - cs.Clue.Sum() // padded empty cells
		if total-1 < p {
			return // not enough room for the runs
		}

		// Divider positions are p-combinations of {1, ..., total-1},
		// iterated in lexicographic order.
		dividers := make([]int, p)
		for i := range dividers {
			dividers[i] = i + 1
		}
		for {
			if !yield(cs.expand(dividers, total)) {
				return
			}

			// Advance to the next combination: bump the rightmost divider
			// that has room, reset everything after it.
			i := p - 1
			for i >= 0 && dividers[i] == total-p+i {
				i--
			}
			if i < 0 {
				return
			}
			dividers[i]++
			for j := i + 1; j < p; j++ {
				dividers[j] = dividers[j-1] + 1
			}
		}
	}
}

// expand converts divider positions into a line: consecutive differences
// give the padded gap lengths, the leading and trailing gaps lose their one
// padding cell, and gaps and runs alternate into booleans.
func (cs ClueSolutions) expand(dividers []int, total int) []bool {
	bounds := make([]int, 0, len(dividers)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, dividers...)
	bounds = append(bounds, total)

	gaps := make([]int, len(bounds)-1)
	for i := range gaps {
		gaps[i] = bounds[i+1] - bounds[i]
	}
	gaps[0]--
	gaps[len(gaps)-1]--

	line := make([]bool, 0, cs.Length)
	for i, gap := range gaps {
		line = append(line, make([]bool, gap)...)
		if i < len(cs.Clue) {
			for range cs.Clue[i] {
				line = append(line, true)
			}
		}
	}
	return line
}

// binomial computes C(n, k) exactly; zero when the choice is impossible.
func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
