// Package dataset persists a vowel.Store as a flat text record list inside a
// dedicated data directory.
//
// File layout:
//
//	# Vowel Training Data
//	# Format: vowel,f1,f2
//	A,700,1200
//	I,300,2200
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/vowel"
)

const (
	// DefaultFilename is used when no file name is given.
	DefaultFilename = "vowel_training_data.txt"

	// DefaultDir is the data directory, relative to the working directory.
	DefaultDir = "app_data"

	headerTitle  = "# Vowel Training Data"
	headerFormat = "# Format: vowel,f1,f2"

	commentPrefix = "#"
	fieldCount    = 3

	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Codec reads and writes training files in its data directory.
type Codec struct {
	fs  afero.Fs
	dir string
	log logger.Logger
}

// SaveResult describes a completed save.
type SaveResult struct {
	Path     string
	Examples int
}

// LoadResult describes a completed load. Skipped counts malformed records
// that were dropped.
type LoadResult struct {
	Path     string
	Examples int
	Skipped  int
}

// NewCodec creates a codec rooted at dir on fs. A nil fs means the OS
// filesystem, a nil log the global logger.
func NewCodec(fs afero.Fs, dir string, log logger.Logger) *Codec {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if dir == "" {
		dir = DefaultDir
	}
	if log == nil {
		log = logger.Global().Module("dataset")
	}
	return &Codec{fs: fs, dir: dir, log: log}
}

// Dir returns the data directory.
func (c *Codec) Dir() string {
	return c.dir
}

// Path resolves name inside the data directory. Names that would escape the
// directory are rejected.
func (c *Codec) Path(name string) (string, error) {
	if name == "" {
		name = DefaultFilename
	}
	if !filepath.IsLocal(name) {
		return "", errors.New(fmt.Errorf("file name %q must stay inside the data directory", name)).
			Component("dataset").
			Category(errors.CategoryValidation).
			Build()
	}
	return filepath.Join(c.dir, name), nil
}

// Save writes every example of store to name. A failure part way through
// leaves whatever was already written.
func (c *Codec) Save(store *vowel.Store, name string) (SaveResult, error) {
	path, err := c.Path(name)
	if err != nil {
		return SaveResult{}, err
	}

	if err := c.fs.MkdirAll(c.dir, dirPermissions); err != nil {
		return SaveResult{}, writeError(err, path, "create_data_dir")
	}

	f, err := c.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return SaveResult{}, writeError(err, path, "open")
	}

	n, err := Encode(f, store)
	if err != nil {
		_ = f.Close()
		return SaveResult{}, writeError(err, path, "write")
	}
	if err := f.Close(); err != nil {
		return SaveResult{}, writeError(err, path, "close")
	}

	c.log.Info("saved training data",
		logger.String("path", path),
		logger.Int("examples", n))

	return SaveResult{Path: path, Examples: n}, nil
}

// Encode writes the header and one record per example.
func Encode(w io.Writer, store *vowel.Store) (int, error) {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%s\n", headerTitle, headerFormat); err != nil {
		return 0, err
	}

	n := 0
	for _, label := range vowel.Labels() {
		for _, p := range store.Pairs(label) {
			if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", label, formatFloat(p.F1), formatFloat(p.F2)); err != nil {
				return n, err
			}
			n++
		}
	}

	return n, bw.Flush()
}

// Load replaces the contents of store with the records in name. The store is
// cleared before the file is opened, so a missing file returns a NotFound
// error with the store empty.
func (c *Codec) Load(store *vowel.Store, name string) (LoadResult, error) {
	path, err := c.Path(name)
	if err != nil {
		return LoadResult{}, err
	}

	store.ClearAll()

	f, err := c.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{Path: path}, errors.New(fmt.Errorf("training data file %s: %w", path, errors.ErrNotFound)).
				Component("dataset").
				Category(errors.CategoryNotFound).
				Context("operation", "open").
				Build()
		}
		return LoadResult{}, errors.New(err).
			Component("dataset").
			Category(errors.CategoryFileIO).
			FileContext(path, 0).
			Context("operation", "open").
			Build()
	}
	defer func() { _ = f.Close() }()

	result := LoadResult{Path: path}
	result.Examples, result.Skipped, err = c.decode(f, store)
	if err != nil {
		return result, errors.New(err).
			Component("dataset").
			Category(errors.CategoryFileIO).
			FileContext(path, 0).
			Context("operation", "read").
			Build()
	}

	c.log.Info("loaded training data",
		logger.String("path", path),
		logger.Int("examples", result.Examples),
		logger.Int("skipped", result.Skipped))

	return result, nil
}

// decode appends every well-formed record to store. Malformed records are
// skipped and counted.
func (c *Codec) decode(r io.Reader, store *vowel.Store) (loaded, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		label, pair, perr := ParseRecord(line)
		if perr != nil {
			skipped++
			c.log.Debug("skipping malformed record",
				logger.Int("line", lineNo),
				logger.Error(perr))
			continue
		}
		if !store.Add(label, pair) {
			skipped++
			continue
		}
		loaded++
	}
	return loaded, skipped, scanner.Err()
}

// ParseRecord parses one "LABEL,F1,F2" record. Failures wrap errors.ErrFormat.
func ParseRecord(line string) (vowel.Label, vowel.Pair, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return 0, vowel.Pair{}, fmt.Errorf("%w: expected %d fields, got %d", errors.ErrFormat, fieldCount, len(fields))
	}

	f1, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return 0, vowel.Pair{}, fmt.Errorf("%w: f1: %w", errors.ErrFormat, err)
	}
	f2, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return 0, vowel.Pair{}, fmt.Errorf("%w: f2: %w", errors.ErrFormat, err)
	}

	label, ok := vowel.LabelFromSymbol(fields[0])
	if !ok {
		return 0, vowel.Pair{}, fmt.Errorf("%w: unknown vowel %q", errors.ErrFormat, fields[0])
	}

	return label, vowel.Pair{F1: f1, F2: f2}, nil
}

// formatFloat uses the shortest representation that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeError(err error, path, operation string) error {
	return errors.New(fmt.Errorf("%w: %w", errors.ErrWrite, err)).
		Component("dataset").
		Category(errors.CategoryFileIO).
		FileContext(path, 0).
		Context("operation", operation).
		Build()
}
