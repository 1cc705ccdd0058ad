// Package evaluation estimates classifier accuracy on the training store with
// stratified k-fold cross-validation over several neighbor counts.
package evaluation

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/vowel"
)

const (
	// MinExamples is the smallest store that can be evaluated.
	MinExamples = 15

	// InsufficientDataMessage is the advisory shown when the store is too small.
	InsufficientDataMessage = "Need at least 15 total examples for accuracy testing!"

	maxFolds = 5
	minFolds = 2

	fewExamplesThreshold    = 20
	enoughExamplesThreshold = 50
	imbalanceRatio          = 3
)

// CandidateK lists the neighbor counts tried by Evaluate.
var CandidateK = []int{1, 3, 5, 7}

// LabelCount is the number of examples stored for one vowel.
type LabelCount struct {
	Label vowel.Label `json:"label" yaml:"label"`
	Count int         `json:"count" yaml:"count"`
}

// KResult is the cross-validated accuracy for one neighbor count.
type KResult struct {
	K      int  `json:"k" yaml:"k"`
	Tested bool `json:"tested" yaml:"tested"`
	// Reason explains why the K could not be tested.
	Reason       string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	MeanAccuracy float64   `json:"mean_accuracy" yaml:"mean_accuracy"`
	StdDev       float64   `json:"std_dev" yaml:"std_dev"`
	ErrorBar     float64   `json:"error_bar" yaml:"error_bar"`
	FoldScores   []float64 `json:"fold_scores,omitempty" yaml:"fold_scores,omitempty"`
}

// Report summarises an evaluation run.
type Report struct {
	Counts          []LabelCount `json:"counts" yaml:"counts"`
	Total           int          `json:"total" yaml:"total"`
	Folds           int          `json:"folds" yaml:"folds"`
	Results         []KResult    `json:"results" yaml:"results"`
	Recommendations []string     `json:"recommendations" yaml:"recommendations"`
}

// Evaluate cross-validates every candidate K below the store size. A K that
// cannot be tested is reported as such; only a store with fewer than
// MinExamples examples is refused.
func Evaluate(store *vowel.Store) (*Report, error) {
	total := store.Total()
	if total < MinExamples {
		return nil, errors.InsufficientData("evaluation", total, MinExamples)
	}

	examples := store.Examples()
	report := &Report{
		Total: total,
		Folds: foldCount(total),
	}

	for _, label := range vowel.Labels() {
		if n := store.Count(label); n > 0 {
			report.Counts = append(report.Counts, LabelCount{Label: label, Count: n})
		}
	}

	testFold, splitErr := stratifiedFolds(examples, report.Folds)

	for _, k := range CandidateK {
		if k >= total {
			continue
		}
		result := KResult{K: k}
		if splitErr != nil {
			result.Reason = splitErr.Error()
			report.Results = append(report.Results, result)
			continue
		}

		scores, err := crossValidate(examples, testFold, report.Folds, k)
		if err != nil {
			result.Reason = err.Error()
			report.Results = append(report.Results, result)
			continue
		}

		result.Tested = true
		result.FoldScores = scores
		result.MeanAccuracy, result.StdDev = stat.PopMeanStdDev(scores, nil)
		result.ErrorBar = 2 * result.StdDev
		report.Results = append(report.Results, result)
	}

	report.Recommendations = recommend(report.Counts)
	return report, nil
}

// foldCount is min(5, total/2), never below 2.
func foldCount(total int) int {
	return max(minFolds, min(maxFolds, total/2))
}

// recommend turns per-label counts into advice. Only labels with data count.
func recommend(counts []LabelCount) []string {
	if len(counts) == 0 {
		return nil
	}

	lo, hi := counts[0].Count, counts[0].Count
	for _, c := range counts[1:] {
		lo = min(lo, c.Count)
		hi = max(hi, c.Count)
	}

	var recs []string
	switch {
	case lo < fewExamplesThreshold:
		recs = append(recs,
			"Collect more examples for vowels with < 20 examples",
			"Target: 30-50 examples per vowel for good accuracy")
	case lo < enoughExamplesThreshold:
		recs = append(recs,
			"You have a good start! Consider collecting 50+ examples per vowel",
			"Expected accuracy: 75-85%")
	default:
		recs = append(recs,
			"Excellent training data! You should see 85-95% accuracy",
			"Diminishing returns beyond 100 examples per vowel")
	}

	if hi > lo*imbalanceRatio {
		recs = append(recs,
			"Dataset is unbalanced - some vowels have many more examples",
			"Consider training more examples for under-represented vowels")
	}

	return recs
}
