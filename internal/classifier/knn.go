// Package classifier predicts vowels from formant pairs with a k-nearest
// neighbor vote over the current training store.
package classifier

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/vowel"
)

const (
	// DefaultK is the neighbor count used for live prediction.
	DefaultK = 3

	// MinExamples is the hard floor below which prediction is refused.
	MinExamples = 5
)

// Neighbor is one training example close to the query.
type Neighbor struct {
	Label    vowel.Label `json:"label" yaml:"label"`
	Pair     vowel.Pair  `json:"pair" yaml:"pair"`
	Distance float64     `json:"distance" yaml:"distance"`
}

// Prediction is the majority label among the K nearest neighbors.
// Confidence is the winning vote share, not a calibrated probability.
type Prediction struct {
	Label      vowel.Label `json:"label" yaml:"label"`
	Confidence float64     `json:"confidence" yaml:"confidence"`
	Neighbors  []Neighbor  `json:"neighbors" yaml:"neighbors"`
}

// KNN is a brute-force k-nearest-neighbor model using Euclidean distance in
// (F1, F2) space without feature scaling.
//
// Neighbors at equal distance keep training order (canonical label order,
// then insertion order). A tied vote goes to the lowest label in canonical
// order.
type KNN struct {
	K int

	points [][]float64
	labels []vowel.Label
}

// NewKNN returns an untrained model; k <= 0 selects DefaultK.
func NewKNN(k int) *KNN {
	if k <= 0 {
		k = DefaultK
	}
	return &KNN{K: k}
}

// Fit stores the training examples. It refuses datasets smaller than
// MinExamples.
func (m *KNN) Fit(examples []vowel.Example) error {
	if len(examples) < MinExamples {
		return errors.InsufficientData("classifier", len(examples), MinExamples)
	}
	m.fit(examples)
	return nil
}

// FitFold stores examples without the MinExamples floor. Cross-validation
// trains on folds that may be smaller than a live dataset; it only needs
// enough points for K.
func (m *KNN) FitFold(examples []vowel.Example) error {
	if len(examples) < m.K {
		return errors.InsufficientData("classifier", len(examples), m.K)
	}
	m.fit(examples)
	return nil
}

func (m *KNN) fit(examples []vowel.Example) {
	m.points = make([][]float64, len(examples))
	m.labels = make([]vowel.Label, len(examples))
	for i, ex := range examples {
		m.points[i] = []float64{ex.Pair.F1, ex.Pair.F2}
		m.labels[i] = ex.Label
	}
}

// Trained reports whether Fit has been called with usable data.
func (m *KNN) Trained() bool {
	return len(m.points) > 0
}

// Predict returns the majority label among the K nearest training points.
func (m *KNN) Predict(pair vowel.Pair) (Prediction, error) {
	if !m.Trained() {
		return Prediction{}, errors.InsufficientData("classifier", 0, MinExamples)
	}
	if m.K > len(m.points) {
		return Prediction{}, errors.New(fmt.Errorf("k=%d neighbors requested but only %d training examples", m.K, len(m.points))).
			Component("classifier").
			Category(errors.CategoryValidation).
			Context("k", m.K).
			Context("examples", len(m.points)).
			Build()
	}

	neighbors := m.nearest(pair)

	var votes [len(labelOrder)]int
	for _, n := range neighbors {
		votes[n.Label]++
	}

	// Strictly greater keeps the lowest label on a tie
	winner := labelOrder[0]
	for _, label := range labelOrder[1:] {
		if votes[label] > votes[winner] {
			winner = label
		}
	}

	return Prediction{
		Label:      winner,
		Confidence: float64(votes[winner]) / float64(len(neighbors)),
		Neighbors:  neighbors,
	}, nil
}

// nearest returns the K closest training points, closest first.
func (m *KNN) nearest(pair vowel.Pair) []Neighbor {
	query := []float64{pair.F1, pair.F2}

	all := make([]Neighbor, len(m.points))
	for i, p := range m.points {
		all[i] = Neighbor{
			Label:    m.labels[i],
			Pair:     vowel.Pair{F1: p[0], F2: p[1]},
			Distance: floats.Distance(query, p, 2),
		}
	}

	slices.SortStableFunc(all, func(a, b Neighbor) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return all[:m.K]
}

var labelOrder = [...]vowel.Label{vowel.A, vowel.E, vowel.I, vowel.O, vowel.U}
