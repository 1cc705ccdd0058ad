package classifier

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/vowel"
)

func quietLogger() logger.Logger {
	return logger.NewSlogLogger(io.Discard, logger.LogLevelError, nil)
}

func scenarioStore() *vowel.Store {
	s := vowel.NewStore()
	s.AddAll(vowel.A, []vowel.Pair{{700, 1200}, {720, 1180}, {680, 1150}})
	s.AddAll(vowel.I, []vowel.Pair{{300, 2200}, {320, 2150}, {290, 2250}})
	return s
}

func TestPredictScenario(t *testing.T) {
	t.Parallel()

	store := scenarioStore()
	require.Equal(t, 6, store.Total())

	c := New(store, 3, quietLogger())
	pred, err := c.Predict(vowel.Pair{F1: 710, F2: 1190})
	require.NoError(t, err)

	assert.Equal(t, vowel.A, pred.Label)
	assert.InDelta(t, 1.0, pred.Confidence, 1e-12)
	require.Len(t, pred.Neighbors, 3)
	for _, n := range pred.Neighbors {
		assert.Equal(t, vowel.A, n.Label)
	}
	assert.LessOrEqual(t, pred.Neighbors[0].Distance, pred.Neighbors[1].Distance)
	assert.InDelta(t, 14.142135623730951, pred.Neighbors[0].Distance, 1e-9)
}

func TestPredictRefusesSmallDatasets(t *testing.T) {
	t.Parallel()

	store := vowel.NewStore()
	c := New(store, 3, quietLogger())

	for i := range 4 {
		_, err := c.Predict(vowel.Pair{F1: 500, F2: 1500})
		require.Error(t, err, "size %d", i)
		assert.True(t, errors.Is(err, errors.ErrInsufficientData))
		assert.True(t, errors.IsCategory(err, errors.CategoryInsufficientData))
		store.Add(vowel.O, vowel.Pair{F1: float64(500 + i), F2: 900})
	}

	store.Add(vowel.U, vowel.Pair{F1: 310, F2: 870})
	require.Equal(t, 5, store.Total())

	pred, err := c.Predict(vowel.Pair{F1: 500, F2: 1500})
	require.NoError(t, err)
	assert.True(t, pred.Label.Valid())
	assert.GreaterOrEqual(t, pred.Confidence, 0.0)
	assert.LessOrEqual(t, pred.Confidence, 1.0)
}

func TestPredictSeesStoreMutations(t *testing.T) {
	t.Parallel()

	store := scenarioStore()
	c := New(store, 3, quietLogger())

	query := vowel.Pair{F1: 500, F2: 900}
	first, err := c.Predict(query)
	require.NoError(t, err)
	assert.Equal(t, vowel.A, first.Label)

	store.AddAll(vowel.O, []vowel.Pair{{500, 900}, {505, 905}, {495, 895}})
	second, err := c.Predict(query)
	require.NoError(t, err)
	assert.Equal(t, vowel.O, second.Label)

	store.Clear(vowel.O)
	store.Clear(vowel.I)
	_, err = c.Predict(query)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInsufficientData))
}

func TestModelCachedByVersion(t *testing.T) {
	t.Parallel()

	store := scenarioStore()
	c := New(store, 3, quietLogger())

	_, err := c.Predict(vowel.Pair{F1: 700, F2: 1200})
	require.NoError(t, err)
	cached := c.model

	_, err = c.Predict(vowel.Pair{F1: 300, F2: 2200})
	require.NoError(t, err)
	assert.Same(t, cached, c.model, "unchanged store must reuse the fitted model")

	store.Add(vowel.A, vowel.Pair{F1: 705, F2: 1210})
	_, err = c.Predict(vowel.Pair{F1: 300, F2: 2200})
	require.NoError(t, err)
	assert.NotSame(t, cached, c.model)
}

func TestVoteTieGoesToLowestLabel(t *testing.T) {
	t.Parallel()

	m := NewKNN(2)
	require.NoError(t, m.Fit([]vowel.Example{
		{Pair: vowel.Pair{F1: 400, F2: 1000}, Label: vowel.U},
		{Pair: vowel.Pair{F1: 600, F2: 1000}, Label: vowel.E},
		{Pair: vowel.Pair{F1: 5000, F2: 5000}, Label: vowel.A},
		{Pair: vowel.Pair{F1: 5000, F2: 5001}, Label: vowel.A},
		{Pair: vowel.Pair{F1: 5000, F2: 5002}, Label: vowel.A},
	}))

	pred, err := m.Predict(vowel.Pair{F1: 500, F2: 1000})
	require.NoError(t, err)
	assert.Equal(t, vowel.E, pred.Label)
	assert.InDelta(t, 0.5, pred.Confidence, 1e-12)
}

func TestEqualDistancesKeepTrainingOrder(t *testing.T) {
	t.Parallel()

	m := NewKNN(1)
	require.NoError(t, m.Fit([]vowel.Example{
		{Pair: vowel.Pair{F1: 400, F2: 1000}, Label: vowel.I},
		{Pair: vowel.Pair{F1: 600, F2: 1000}, Label: vowel.E},
		{Pair: vowel.Pair{F1: 1, F2: 1}, Label: vowel.A},
		{Pair: vowel.Pair{F1: 2, F2: 2}, Label: vowel.A},
		{Pair: vowel.Pair{F1: 3, F2: 3}, Label: vowel.A},
	}))

	pred, err := m.Predict(vowel.Pair{F1: 500, F2: 1000})
	require.NoError(t, err)
	assert.Equal(t, vowel.I, pred.Label, "first equidistant point in training order wins")
	assert.InDelta(t, 1.0, pred.Confidence, 0)
}

func TestKLargerThanDataset(t *testing.T) {
	t.Parallel()

	store := scenarioStore()
	c := New(store, 7, quietLogger())

	_, err := c.Predict(vowel.Pair{F1: 500, F2: 1500})
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
	assert.Equal(t, 7, c.K())
}

func TestNewKNNDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultK, NewKNN(0).K)
	assert.Equal(t, DefaultK, New(vowel.NewStore(), -1, quietLogger()).K())
	assert.False(t, NewKNN(3).Trained())
}
