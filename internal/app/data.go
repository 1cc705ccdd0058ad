package app

import (
	"path/filepath"
	"strings"

	"github.com/tphakala/vowelnet/internal/dataset"
	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/vowel"
)

const listRuleWidth = 50

// LoadDefault loads the configured dataset file if it exists. A missing file
// leaves the store empty and is not an error.
func (a *App) LoadDefault() error {
	res, err := a.codec.Load(a.store, a.settings.Data.File)
	a.updateStoreGauges()
	if err != nil {
		if errors.IsNotFound(err) {
			a.log.Debug("no saved training data", logger.String("file", a.settings.Data.File))
			return nil
		}
		return err
	}
	a.log.Debug("training data loaded",
		logger.String("path", res.Path),
		logger.Int("examples", res.Examples),
		logger.Int("skipped", res.Skipped))
	return nil
}

// SaveDefault writes the store to the configured dataset file.
func (a *App) SaveDefault() error {
	res, err := a.codec.Save(a.store, a.settings.Data.File)
	if err != nil {
		return err
	}
	a.log.Debug("training data saved", logger.String("path", res.Path), logger.Int("examples", res.Examples))
	return nil
}

// Save writes the store to name inside the data directory; empty name means
// the configured file.
func (a *App) Save(name string) (dataset.SaveResult, error) {
	res, err := a.codec.Save(a.store, a.fileName(name))
	if err != nil {
		a.printf("Error saving training data: %v\n", err)
		return res, err
	}
	a.printf("Saved %d training examples to %s\n", res.Examples, res.Path)
	return res, nil
}

// Load replaces the store with the contents of name; empty name means the
// configured file. The store is emptied even when the file is missing.
func (a *App) Load(name string) (dataset.LoadResult, error) {
	res, err := a.codec.Load(a.store, a.fileName(name))
	a.updateStoreGauges()
	if err != nil {
		if errors.IsNotFound(err) {
			a.printf("Training data file %s not found.\n", res.Path)
			a.printf("Note: Files are stored in the '%s' directory\n", a.codec.Dir())
			return res, err
		}
		a.printf("Error loading training data: %v\n", err)
		return res, err
	}
	a.printf("Loaded %d training examples from %s\n", res.Examples, res.Path)
	if res.Skipped > 0 {
		a.printf("Skipped %d malformed lines\n", res.Skipped)
	}
	return res, nil
}

// Clear removes every example of label and returns how many were removed.
func (a *App) Clear(label vowel.Label) int {
	n := a.store.Clear(label)
	a.updateStoreGauges()
	a.printf("Cleared %d training examples for vowel: %s\n", n, label)
	return n
}

// ClearAll empties the store and returns how many examples were removed.
func (a *App) ClearAll() int {
	n := a.store.ClearAll()
	a.updateStoreGauges()
	a.printf("Cleared %d training examples for vowel: ALL\n", n)
	return n
}

// ListFiles prints the dataset files in the data directory.
func (a *App) ListFiles() ([]dataset.FileInfo, error) {
	files, err := a.codec.List()
	if err != nil {
		a.printf("Error listing files: %v\n", err)
		return nil, err
	}
	if files == nil {
		if ok, _ := a.codec.DirExists(); !ok {
			a.printf("No %s directory found. No saved training data files.\n", a.codec.Dir())
			return nil, nil
		}
	}
	if len(files) == 0 {
		a.printf("No training data files found in %s directory.\n", a.codec.Dir())
		return files, nil
	}

	rule := strings.Repeat("=", listRuleWidth)
	a.printf("\n%s\nSAVED TRAINING DATA FILES\n%s\n", rule, rule)
	for i, f := range files {
		if f.Err != nil {
			a.printf("%2d. %s (error reading details: %v)\n", i+1, f.Name, f.Err)
			continue
		}
		a.printf("%2d. %s\n", i+1, f.Name)
		a.printf("     Size: %.1f KB | Examples: ~%d | Modified: %s\n",
			float64(f.Size)/1024, f.Examples, f.Modified.Local().Format("2006-01-02 15:04"))
	}
	dir, err := filepath.Abs(a.codec.Dir())
	if err != nil {
		dir = a.codec.Dir()
	}
	a.printf("\nFiles are stored in: %s\n", dir)
	return files, nil
}

func (a *App) fileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return a.settings.Data.File
	}
	return name
}
