package nonogram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClueSolutionsCount(t *testing.T) {
	tests := []struct {
		clue   Clue
		length int
		want   int
	}{
		{Clue{1, 1, 1}, 5, 1},
		{Clue{1, 1, 1}, 7, 10},
		{Clue{5}, 10, 6},
		{Clue{2, 3}, 10, 15},
		{Clue{3}, 3, 1},  // exact fit
		{Clue{3}, 2, 0},  // no room
		{Clue{1, 1}, 2, 0},
		{Clue{}, 0, 1},
		{Clue{}, 8, 1},
		{Clue{1}, 6, 6},
	}

	for _, test := range tests {
		name := fmt.Sprintf("%v/%d", test.clue, test.length)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Solutions(test.clue, test.length).Count())
		})
	}
}

func TestClueSolutionsExactFitIsUnique(t *testing.T) {
	cs := Solutions(Clue{1, 1, 1}, 5)
	var lines [][]bool
	for line := range cs.All() {
		lines = append(lines, line)
	}
	require.Len(t, lines, 1)
	assert.Equal(t, []bool{true, false, true, false, true}, lines[0])
}

func TestClueSolutionsDegenerate(t *testing.T) {
	var lines [][]bool
	for line := range Solutions(Clue{}, 4).All() {
		lines = append(lines, line)
	}
	require.Len(t, lines, 1)
	assert.Equal(t, []bool{false, false, false, false}, lines[0])
}

func TestClueSolutionsInfeasible(t *testing.T) {
	for range Solutions(Clue{4}, 3).All() {
		t.Fatal("infeasible enumeration must yield nothing")
	}
}

func TestClueSolutionsOrder(t *testing.T) {
	// Ordered by the position of the first run, then the second, etc.
	want := [][]bool{
		{true, false, true, false, false},
		{true, false, false, true, false},
		{true, false, false, false, true},
		{false, true, false, true, false},
		{false, true, false, false, true},
		{false, false, true, false, true},
	}
	var got [][]bool
	for line := range Solutions(Clue{1, 1}, 5).All() {
		got = append(got, line)
	}
	assert.Equal(t, want, got)
}

func TestClueSolutionsEnumerationMatchesCount(t *testing.T) {
	tests := []struct {
		clue   Clue
		length int
	}{
		{Clue{1, 1, 1}, 7},
		{Clue{5}, 10},
		{Clue{2, 3}, 10},
		{Clue{1}, 1},
		{Clue{2, 1, 2}, 9},
		{Clue{}, 6},
	}

	for _, test := range tests {
		name := fmt.Sprintf("%v/%d", test.clue, test.length)
		t.Run(name, func(t *testing.T) {
			cs := Solutions(test.clue, test.length)
			seen := make(map[string]bool)
			for line := range cs.All() {
				require.Len(t, line, test.length)
				assert.True(t, test.clue.SatisfiedBy(line),
					"enumerated line %v does not satisfy %v", line, test.clue)
				key := fmt.Sprint(line)
				assert.False(t, seen[key], "duplicate line %v", line)
				seen[key] = true
			}
			assert.Equal(t, cs.Count(), len(seen))
		})
	}
}

func TestClueSolutionsRestartable(t *testing.T) {
	cs := Solutions(Clue{2, 3}, 10)
	first, second := 0, 0
	for range cs.All() {
		first++
	}
	for range cs.All() {
		second++
	}
	assert.Equal(t, first, second)
	assert.Equal(t, cs.Count(), first)
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1, binomial(0, 0))
	assert.Equal(t, 1, binomial(5, 0))
	assert.Equal(t, 5, binomial(5, 1))
	assert.Equal(t, 10, binomial(5, 2))
	assert.Equal(t, 252, binomial(10, 5))
	assert.Equal(t, 0, binomial(3, 4))
	assert.Equal(t, 0, binomial(-1, 0))
	assert.Equal(t, 0, binomial(4, -1))
}
