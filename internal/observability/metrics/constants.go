// Package metrics provides the Prometheus collectors for vowelnet.
package metrics

import "time"

// Prediction error types used as label values.
const (
	// ErrorTypeValidation is a prediction refused because K exceeds the data.
	ErrorTypeValidation = "validation"
	// ErrorTypeInsufficientData is a prediction refused for lack of examples.
	ErrorTypeInsufficientData = "insufficient_data"
	// ErrorTypeOther covers every remaining failure.
	ErrorTypeOther = "other"
)

// Sample outcomes used as label values.
const (
	OutcomeCollected = "collected"
	OutcomeSkipped   = "skipped"
)

const (
	// ShutdownTimeout is the timeout for graceful shutdown operations.
	ShutdownTimeout = 5 * time.Second
)
