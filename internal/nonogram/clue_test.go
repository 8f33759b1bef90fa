package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClueDropsZeros(t *testing.T) {
	clue, err := NewClue(0, 3, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Clue{3, 1}, clue)
}

func TestNewClueEmpty(t *testing.T) {
	clue, err := NewClue()
	require.NoError(t, err)
	assert.Empty(t, clue)

	clue, err = NewClue(0, 0)
	require.NoError(t, err)
	assert.Empty(t, clue)
}

func TestNewClueRejectsNegatives(t *testing.T) {
	_, err := NewClue(2, -1, 3)
	assert.ErrorIs(t, err, ErrNegativeRun)
}

func TestClueSum(t *testing.T) {
	assert.Equal(t, 0, Clue{}.Sum())
	assert.Equal(t, 6, Clue{1, 2, 3}.Sum())
}

func TestClueSatisfiedBy(t *testing.T) {
	tests := []struct {
		name string
		clue Clue
		line []bool
		want bool
	}{
		{
			name: "empty clue empty line",
			clue: Clue{},
			line: []bool{},
			want: true,
		},
		{
			name: "empty clue all-false line",
			clue: Clue{},
			line: []bool{false, false, false, false},
			want: true,
		},
		{
			name: "empty clue filled line",
			clue: Clue{},
			line: []bool{false, true, false},
			want: false,
		},
		{
			name: "single run exact",
			clue: Clue{3},
			line: []bool{true, true, true},
			want: true,
		},
		{
			name: "single run shifted",
			clue: Clue{3},
			line: []bool{false, true, true, true, false},
			want: true,
		},
		{
			name: "run touching the last cell",
			clue: Clue{2},
			line: []bool{false, false, true, true},
			want: true,
		},
		{
			name: "run too short",
			clue: Clue{3},
			line: []bool{true, true, false},
			want: false,
		},
		{
			name: "run too long",
			clue: Clue{2},
			line: []bool{true, true, true},
			want: false,
		},
		{
			name: "missing second run",
			clue: Clue{1, 1},
			line: []bool{true, false, false},
			want: false,
		},
		{
			name: "extra run",
			clue: Clue{1},
			line: []bool{true, false, true},
			want: false,
		},
		{
			name: "runs in order",
			clue: Clue{1, 2},
			line: []bool{true, false, true, true},
			want: true,
		},
		{
			name: "runs out of order",
			clue: Clue{1, 2},
			line: []bool{true, true, false, true},
			want: false,
		},
		{
			name: "adjacent runs merge",
			clue: Clue{1, 1},
			line: []bool{true, true},
			want: false,
		},
		{
			name: "nonempty clue empty line",
			clue: Clue{1},
			line: []bool{},
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.clue.SatisfiedBy(test.line))
		})
	}
}
