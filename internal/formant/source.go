// Package formant defines the acoustic front end consumed by the realtime
// loop and provides a trace replay source plus capture device enumeration.
package formant

import (
	"fmt"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// Device describes one selectable input.
type Device struct {
	Index int
	Name  string
	ID    string
	// Channels is the number of input channels; zero means unknown.
	Channels int
	Default  bool
}

// Source is a formant detector. Formants is a non-blocking snapshot; the
// zero Pair means no voiced formant was detected this tick.
type Source interface {
	ListDevices() ([]Device, error)
	StartStream(deviceIndex int) error
	StopStream() error
	Formants() (vowel.Pair, error)
}

// TryDevice opens and immediately closes deviceIndex to check it is usable.
func TryDevice(src Source, deviceIndex int) error {
	if err := src.StartStream(deviceIndex); err != nil {
		return err
	}
	return src.StopStream()
}

// streamError builds a StreamError for deviceIndex.
func streamError(cause error, deviceIndex int, operation string) error {
	err := fmt.Errorf("%w: device %d", errors.ErrStream, deviceIndex)
	if cause != nil {
		err = fmt.Errorf("%w: device %d: %w", errors.ErrStream, deviceIndex, cause)
	}
	return errors.New(err).
		Component("formant").
		Category(errors.CategoryAudioSource).
		Context("device_index", deviceIndex).
		Context("operation", operation).
		Build()
}
