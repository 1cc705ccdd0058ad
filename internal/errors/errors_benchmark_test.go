package errors

import (
	"fmt"
	"testing"
)

// BenchmarkErrorCreation measures the fluent builder with an explicit component.
func BenchmarkErrorCreation(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		err := fmt.Errorf("test error")
		_ = New(err).
			Component("test").
			Category(CategoryGeneric).
			Build()
	}
}

// BenchmarkErrorCreationAutoDetect leaves category detection to Build.
func BenchmarkErrorCreationAutoDetect(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		err := fmt.Errorf("%w: device 2", ErrStream)
		_ = New(err).Build()
	}
}

// BenchmarkComponentDetection measures the lazy stack walk behind GetComponent.
func BenchmarkComponentDetection(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		ee := New(ErrFormat).Build()
		_ = ee.GetComponent()
	}
}

// BenchmarkInsufficientData measures the helper used by the classifier.
func BenchmarkInsufficientData(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_ = InsufficientData("classifier", 3, 10)
	}
}
