package vowel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/vowelnet/internal/errors"
)

func TestParseLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Label
		wantErr bool
	}{
		{"A", A, false},
		{"e", E, false},
		{" i ", I, false},
		{"O", O, false},
		{"u", U, false},
		{"Y", 0, true},
		{"", 0, true},
		{"AE", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLabel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelFromSymbolIsExact(t *testing.T) {
	t.Parallel()

	_, ok := LabelFromSymbol("a")
	assert.False(t, ok, "stored symbols are upper-case only")

	label, ok := LabelFromSymbol("U")
	assert.True(t, ok)
	assert.Equal(t, U, label)
	assert.Equal(t, "Label(7)", Label(7).String())
}

func TestAddSkipsSentinels(t *testing.T) {
	t.Parallel()

	s := NewStore()
	pairs := []Pair{{700, 1200}, {0, 0}, {720, 1180}, {-1, 900}, {300, 0}, {680, 1150}}

	added := 0
	for _, p := range pairs {
		if s.Add(A, p) {
			added++
		}
	}

	assert.Equal(t, 3, added)
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, []Pair{{700, 1200}, {720, 1180}, {680, 1150}}, s.Pairs(A))
	assert.False(t, s.Add(Label(9), Pair{700, 1200}))
}

func TestTotalEqualsSumOfCounts(t *testing.T) {
	t.Parallel()

	s := NewStore()
	for i, label := range Labels() {
		for j := 0; j <= i; j++ {
			s.Add(label, Pair{F1: float64(300 + j), F2: float64(900 + i)})
		}
	}
	// duplicates are kept
	s.Add(U, Pair{300, 904})

	sum := 0
	for _, n := range s.Counts() {
		sum += n
	}
	assert.Equal(t, 16, s.Total())
	assert.Equal(t, sum, s.Total())
	assert.Equal(t, 6, s.Count(U))
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.AddAll(A, []Pair{{700, 1200}, {720, 1180}})
	s.AddAll(I, []Pair{{300, 2200}})

	assert.Equal(t, 2, s.Clear(A))
	assert.Equal(t, 0, s.Count(A))
	assert.Equal(t, 1, s.Total())
	assert.Equal(t, 0, s.Clear(A))

	s.AddAll(O, []Pair{{500, 900}, {510, 880}})
	assert.Equal(t, 3, s.ClearAll())
	for _, label := range Labels() {
		assert.Equal(t, 0, s.Count(label), label.String())
	}
	assert.Equal(t, 0, s.Total())
}

func TestExamplesCanonicalOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add(U, Pair{300, 800})
	s.Add(A, Pair{700, 1200})
	s.Add(I, Pair{300, 2200})
	s.Add(A, Pair{710, 1190})

	got := s.Examples()
	require.Len(t, got, 4)
	assert.Equal(t, []Example{
		{Pair{700, 1200}, A},
		{Pair{710, 1190}, A},
		{Pair{300, 2200}, I},
		{Pair{300, 800}, U},
	}, got)
}

func TestVersionChangesOnMutation(t *testing.T) {
	t.Parallel()

	s := NewStore()
	v0 := s.Version()

	s.Add(A, Pair{700, 1200})
	v1 := s.Version()
	assert.NotEqual(t, v0, v1)

	s.Add(A, Pair{0, 0})
	assert.Equal(t, v1, s.Version(), "rejected sentinel must not bump the version")

	s.Clear(E)
	assert.NotEqual(t, v1, s.Version())
}

func TestPairsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add(E, Pair{450, 1900})
	p := s.Pairs(E)
	p[0].F1 = 1

	assert.InDelta(t, 450, s.Pairs(E)[0].F1, 0)
}
