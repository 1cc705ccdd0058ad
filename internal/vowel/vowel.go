// Package vowel defines the vowel label set, formant feature pairs and the
// per-vowel training store.
package vowel

import (
	"fmt"
	"strings"

	"github.com/tphakala/vowelnet/internal/errors"
)

// Label identifies one vowel of the closed set A, E, I, O, U.
type Label uint8

const (
	A Label = iota
	E
	I
	O
	U

	labelCount = 5
)

var labelSymbols = [labelCount]string{"A", "E", "I", "O", "U"}

// Labels lists every vowel in canonical order. Persistence and flattening
// follow this order.
func Labels() []Label {
	return []Label{A, E, I, O, U}
}

// Valid reports whether l belongs to the closed label set.
func (l Label) Valid() bool {
	return l < labelCount
}

// String returns the single-character symbol.
func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
	return labelSymbols[l]
}

// MarshalText implements encoding.TextMarshaler so labels render as symbols
// in YAML and JSON reports.
func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.ValidationError(fmt.Sprintf("invalid vowel label %d", uint8(l)))
	}
	return []byte(labelSymbols[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	label, ok := LabelFromSymbol(string(text))
	if !ok {
		return errors.ValidationError(fmt.Sprintf("invalid vowel label %q", text))
	}
	*l = label
	return nil
}

// LabelFromSymbol matches an exact upper-case symbol, as stored on disk.
func LabelFromSymbol(symbol string) (Label, bool) {
	for i, s := range labelSymbols {
		if s == symbol {
			return Label(i), true
		}
	}
	return 0, false
}

// ParseLabel accepts user input such as "a" or " E ".
func ParseLabel(s string) (Label, error) {
	if label, ok := LabelFromSymbol(strings.ToUpper(strings.TrimSpace(s))); ok {
		return label, nil
	}
	return 0, errors.New(fmt.Errorf("unknown vowel %q, expected one of %s", s, strings.Join(labelSymbols[:], ", "))).
		Component("vowel").
		Category(errors.CategoryValidation).
		Build()
}

// Pair is a first/second formant frequency pair in Hz.
type Pair struct {
	F1 float64 `json:"f1" yaml:"f1"`
	F2 float64 `json:"f2" yaml:"f2"`
}

// Valid reports whether both formants are positive. Anything else is the
// "no voiced formant detected" sentinel.
func (p Pair) Valid() bool {
	return p.F1 > 0 && p.F2 > 0
}

// Example is one labelled pair of a flattened dataset.
type Example struct {
	Pair  Pair
	Label Label
}
