package dataset

import (
	"bufio"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/tphakala/vowelnet/internal/errors"
)

const dataFileExt = ".txt"

// FileInfo summarises a saved training file.
type FileInfo struct {
	Name     string
	Size     int64
	Modified time.Time
	// Examples is approximate: every non-blank, non-comment line counts.
	Examples int
	// Err is set when the file could not be read for details.
	Err error
}

// DirExists reports whether the data directory exists.
func (c *Codec) DirExists() (bool, error) {
	return afero.DirExists(c.fs, c.dir)
}

// List returns the training files in the data directory sorted by name. A
// missing directory yields an empty list.
func (c *Codec) List() ([]FileInfo, error) {
	entries, err := afero.ReadDir(c.fs, c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.New(err).
			Component("dataset").
			Category(errors.CategoryFileIO).
			Context("operation", "list").
			Build()
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), dataFileExt) {
			continue
		}
		info := FileInfo{
			Name:     entry.Name(),
			Size:     entry.Size(),
			Modified: entry.ModTime(),
		}
		info.Examples, info.Err = c.countRecords(filepath.Join(c.dir, entry.Name()))
		files = append(files, info)
	}

	slices.SortFunc(files, func(a, b FileInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return files, nil
}

func (c *Codec) countRecords(path string) (int, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, commentPrefix) {
			n++
		}
	}
	return n, scanner.Err()
}
