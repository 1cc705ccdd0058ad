package evaluation

import (
	"fmt"

	"github.com/tphakala/vowelnet/internal/classifier"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// stratifiedFolds assigns every example to a test fold so that each fold
// holds roughly the same share of every label. Labels are dealt the way a
// stratified splitter without shuffling does it: the sorted label sequence is
// distributed round-robin over the folds, and each label's examples fill
// their fold quota in dataset order.
//
// It fails when every label has fewer examples than folds.
func stratifiedFolds(examples []vowel.Example, folds int) ([]int, error) {
	// encode labels in order of first appearance
	code := make(map[vowel.Label]int)
	encoded := make([]int, len(examples))
	for i, ex := range examples {
		c, ok := code[ex.Label]
		if !ok {
			c = len(code)
			code[ex.Label] = c
		}
		encoded[i] = c
	}
	classes := len(code)

	counts := make([]int, classes)
	for _, c := range encoded {
		counts[c]++
	}

	splittable := false
	for _, n := range counts {
		if n >= folds {
			splittable = true
			break
		}
	}
	if !splittable {
		return nil, fmt.Errorf("%d folds cannot be greater than the number of members in each class", folds)
	}

	// sorted label sequence, dealt round-robin: allocation[f][c] is the
	// number of class c examples tested in fold f
	sorted := make([]int, 0, len(encoded))
	for c, n := range counts {
		for range n {
			sorted = append(sorted, c)
		}
	}
	allocation := make([][]int, folds)
	for f := range allocation {
		allocation[f] = make([]int, classes)
	}
	for i, c := range sorted {
		allocation[i%folds][c]++
	}

	testFold := make([]int, len(examples))
	for c := range classes {
		var quota []int
		for f := range folds {
			for range allocation[f][c] {
				quota = append(quota, f)
			}
		}
		next := 0
		for i, ec := range encoded {
			if ec == c {
				testFold[i] = quota[next]
				next++
			}
		}
	}

	return testFold, nil
}

// crossValidate returns per-fold accuracy of a k-NN model with k neighbors.
func crossValidate(examples []vowel.Example, testFold []int, folds, k int) ([]float64, error) {
	scores := make([]float64, 0, folds)
	for f := range folds {
		var train, test []vowel.Example
		for i, ex := range examples {
			if testFold[i] == f {
				test = append(test, ex)
			} else {
				train = append(train, ex)
			}
		}
		if len(test) == 0 {
			continue
		}

		model := classifier.NewKNN(k)
		if err := model.FitFold(train); err != nil {
			return nil, err
		}

		correct := 0
		for _, ex := range test {
			pred, err := model.Predict(ex.Pair)
			if err != nil {
				return nil, err
			}
			if pred.Label == ex.Label {
				correct++
			}
		}
		scores = append(scores, float64(correct)/float64(len(test)))
	}
	return scores, nil
}
