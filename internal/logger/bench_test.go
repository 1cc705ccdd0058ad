package logger

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

// BenchmarkFieldCreation benchmarks field constructor performance
func BenchmarkFieldCreation(b *testing.B) {
	b.Run("String", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = String("vowel", "A")
		}
	})

	b.Run("Float64", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = Float64("f1", 712.5)
		}
	})

	b.Run("Duration", func(b *testing.B) {
		b.ReportAllocs()
		d := 100 * time.Millisecond
		for b.Loop() {
			_ = Duration("interval", d)
		}
	})

	b.Run("Error", func(b *testing.B) {
		b.ReportAllocs()
		err := io.EOF
		for b.Loop() {
			_ = Error(err)
		}
	})
}

// BenchmarkLogInfo benchmarks a per-poll log line
func BenchmarkLogInfo(b *testing.B) {
	b.Run("NoFields", func(b *testing.B) {
		log := NewSlogLogger(io.Discard, LogLevelInfo, nil)
		b.ReportAllocs()
		for b.Loop() {
			log.Info("poll")
		}
	})

	b.Run("ThreeFields", func(b *testing.B) {
		log := NewSlogLogger(io.Discard, LogLevelInfo, nil).Module("realtime")
		b.ReportAllocs()
		for b.Loop() {
			log.Info("prediction",
				String("vowel", "A"),
				Float64("confidence", 0.67),
				Int("polls", 42))
		}
	})
}

// BenchmarkTextHandler benchmarks the console handler
func BenchmarkTextHandler(b *testing.B) {
	log := &moduleLogger{
		module: "realtime",
		logger: slog.New(newTextHandler(io.Discard, 0)),
		level:  0,
	}
	b.ReportAllocs()
	for b.Loop() {
		log.Info("sample collected", Float64("f1", 700), Float64("f2", 1200))
	}
}

// BenchmarkLevelFiltering benchmarks the early return for filtered levels
func BenchmarkLevelFiltering(b *testing.B) {
	log := NewSlogLogger(io.Discard, LogLevelWarn, nil)
	b.ReportAllocs()
	for b.Loop() {
		log.Debug("filtered", String("key", "value"))
	}
}
