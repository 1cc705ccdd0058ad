package formant

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// traceExtensions are the file types listed as trace devices.
var traceExtensions = []string{".csv", ".txt"}

// TraceSource replays formant traces recorded by a detector. Every trace file
// in the directory is one device; each non-comment line holds "f1,f2". Lines
// that do not parse replay as "no formant". After the last line the source
// keeps returning the zero Pair until stopped.
type TraceSource struct {
	fs  afero.Fs
	dir string
	log logger.Logger

	mu      sync.Mutex
	samples []vowel.Pair
	pos     int
	open    bool
}

// NewTraceSource creates a source over the trace files in dir. A nil fs means
// the OS filesystem.
func NewTraceSource(fs afero.Fs, dir string, log logger.Logger) *TraceSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = logger.Global().Module("formant")
	}
	return &TraceSource{fs: fs, dir: dir, log: log}
}

// ListDevices returns one device per trace file, in name order.
func (s *TraceSource) ListDevices() ([]Device, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.New(err).
			Component("formant").
			Category(errors.CategoryFileIO).
			Context("operation", "list_traces").
			Build()
	}

	var devices []Device
	for _, entry := range entries {
		if entry.IsDir() || !isTraceFile(entry.Name()) {
			continue
		}
		devices = append(devices, Device{
			Index:    len(devices),
			Name:     entry.Name(),
			ID:       filepath.Join(s.dir, entry.Name()),
			Channels: 1,
			Default:  len(devices) == 0,
		})
	}
	return devices, nil
}

// StartStream loads the trace behind deviceIndex and rewinds it.
func (s *TraceSource) StartStream(deviceIndex int) error {
	devices, err := s.ListDevices()
	if err != nil {
		return streamError(err, deviceIndex, "list_devices")
	}
	if deviceIndex < 0 || deviceIndex >= len(devices) {
		return streamError(nil, deviceIndex, "select_device")
	}

	samples, err := s.readTrace(devices[deviceIndex].ID)
	if err != nil {
		return streamError(err, deviceIndex, "open_trace")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = samples
	s.pos = 0
	s.open = true

	s.log.Debug("trace stream started",
		logger.String("trace", devices[deviceIndex].Name),
		logger.Int("samples", len(samples)))
	return nil
}

// StopStream releases the trace. Stopping a stopped source is a no-op.
func (s *TraceSource) StopStream() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = nil
	s.pos = 0
	s.open = false
	return nil
}

// Formants returns the next recorded sample.
func (s *TraceSource) Formants() (vowel.Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return vowel.Pair{}, errors.New(errors.ErrStream).
			Component("formant").
			Category(errors.CategoryAudioSource).
			Context("operation", "read").
			Build()
	}
	if s.pos >= len(s.samples) {
		return vowel.Pair{}, nil
	}
	p := s.samples[s.pos]
	s.pos++
	return p, nil
}

func (s *TraceSource) readTrace(path string) ([]vowel.Pair, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var samples []vowel.Pair
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		samples = append(samples, parseSample(line))
	}
	return samples, scanner.Err()
}

// parseSample reads "f1,f2"; anything unparsable is a no-detection tick.
func parseSample(line string) vowel.Pair {
	f1s, f2s, ok := strings.Cut(line, ",")
	if !ok {
		return vowel.Pair{}
	}
	f1, err1 := strconv.ParseFloat(strings.TrimSpace(f1s), 64)
	f2, err2 := strconv.ParseFloat(strings.TrimSpace(f2s), 64)
	if err1 != nil || err2 != nil {
		return vowel.Pair{}
	}
	return vowel.Pair{F1: f1, F2: f2}
}

func isTraceFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range traceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
