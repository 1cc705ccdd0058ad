package dataset

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/vowel"
)

func newTestCodec(t *testing.T) (*Codec, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewCodec(fs, "app_data", logger.NewSlogLogger(io.Discard, logger.LogLevelError, time.UTC)), fs
}

func sampleStore() *vowel.Store {
	s := vowel.NewStore()
	s.AddAll(vowel.U, []vowel.Pair{{310, 870.25}})
	s.AddAll(vowel.A, []vowel.Pair{{700, 1200}, {720.5, 1180.125}, {700, 1200}})
	s.AddAll(vowel.I, []vowel.Pair{{300, 2200}, {320.1, 2150.9}})
	s.AddAll(vowel.E, []vowel.Pair{{450.333333333, 1900.1}})
	return s
}

func TestEncodeLayout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := Encode(&buf, sampleStore())
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	want := "# Vowel Training Data\n" +
		"# Format: vowel,f1,f2\n" +
		"A,700,1200\n" +
		"A,720.5,1180.125\n" +
		"A,700,1200\n" +
		"E,450.333333333,1900.1\n" +
		"I,300,2200\n" +
		"I,320.1,2150.9\n" +
		"U,310,870.25\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	codec, _ := newTestCodec(t)
	original := sampleStore()

	saved, err := codec.Save(original, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("app_data", DefaultFilename), saved.Path)
	assert.Equal(t, original.Total(), saved.Examples)

	loaded := vowel.NewStore()
	loaded.Add(vowel.O, vowel.Pair{500, 900}) // replaced wholesale by Load

	result, err := codec.Load(loaded, "")
	require.NoError(t, err)
	assert.Equal(t, original.Total(), result.Examples)
	assert.Zero(t, result.Skipped)

	for _, label := range vowel.Labels() {
		assert.Equal(t, original.Pairs(label), loaded.Pairs(label), label.String())
	}
}

func TestEmptyStoreRoundTrip(t *testing.T) {
	t.Parallel()

	codec, fs := newTestCodec(t)

	_, err := codec.Save(vowel.NewStore(), "empty.txt")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, filepath.Join("app_data", "empty.txt"))
	require.NoError(t, err)
	assert.Equal(t, "# Vowel Training Data\n# Format: vowel,f1,f2\n", string(data))

	loaded := vowel.NewStore()
	result, err := codec.Load(loaded, "empty.txt")
	require.NoError(t, err)
	assert.Zero(t, result.Examples)
	assert.Zero(t, loaded.Total())
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	codec, fs := newTestCodec(t)
	content := `# Vowel Training Data
# Format: vowel,f1,f2
A,700.0,1200.0
A,720,1180

E,450,1900
E,460,1880
I,300,2200
I,310,abc
O,500,900
O,510,880,12
O,505,890
U,310,870
U,320,860
X,500,500
  # indented comment
I,290, 2250
`
	require.NoError(t, afero.WriteFile(fs, filepath.Join("app_data", "mixed.txt"), []byte(content), 0o644))

	store := vowel.NewStore()
	result, err := codec.Load(store, "mixed.txt")
	require.NoError(t, err)

	assert.Equal(t, 10, result.Examples)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 10, store.Total())
	assert.Equal(t, 2, store.Count(vowel.I))
	assert.Equal(t, []vowel.Pair{{300, 2200}, {290, 2250}}, store.Pairs(vowel.I))
}

func TestLoadTenValidTwoMalformed(t *testing.T) {
	t.Parallel()

	codec, fs := newTestCodec(t)
	content := "# header\n# header\n" +
		"A,700,1200\nA,710,1190\nE,450,1900\nE,455,1890\nI,300,2200\n" +
		"I,305,2190\nO,500,900\nO,505,890\nU,310,870\nU,315,860\n" +
		"A,700\nZ,1,2\n"
	require.NoError(t, afero.WriteFile(fs, filepath.Join("app_data", "ten.txt"), []byte(content), 0o644))

	store := vowel.NewStore()
	result, err := codec.Load(store, "ten.txt")
	require.NoError(t, err)
	assert.Equal(t, 10, store.Total())
	assert.Equal(t, 2, result.Skipped)
}

func TestLoadMissingFileClearsStore(t *testing.T) {
	t.Parallel()

	codec, _ := newTestCodec(t)
	store := sampleStore()
	require.Positive(t, store.Total())

	result, err := codec.Load(store, "missing.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, filepath.Join("app_data", "missing.txt"), result.Path)
	assert.Equal(t, 0, store.Total(), "load clears the store before opening the file")
}

func TestSaveWriteFailure(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	codec := NewCodec(fs, "app_data", logger.NewSlogLogger(io.Discard, logger.LogLevelError, nil))

	_, err := codec.Save(sampleStore(), "out.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWrite))
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
}

func TestPathRejectsEscapes(t *testing.T) {
	t.Parallel()

	codec, _ := newTestCodec(t)

	for _, name := range []string{"../outside.txt", "/etc/passwd", "a/../../b.txt"} {
		_, err := codec.Path(name)
		require.Error(t, err, name)
		assert.True(t, errors.IsCategory(err, errors.CategoryValidation), name)
	}

	p, err := codec.Path("sessions/monday.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("app_data", "sessions", "monday.txt"), p)
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		label   vowel.Label
		pair    vowel.Pair
		wantErr bool
	}{
		{"A,700,1200", vowel.A, vowel.Pair{700, 1200}, false},
		{"U,3.1e2,8.7e2", vowel.U, vowel.Pair{310, 870}, false},
		{"a,700,1200", 0, vowel.Pair{}, true},
		{"A,700", 0, vowel.Pair{}, true},
		{"A,700,1200,1", 0, vowel.Pair{}, true},
		{"A,x,1200", 0, vowel.Pair{}, true},
		{"Q,700,1200", 0, vowel.Pair{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			label, pair, err := ParseRecord(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, tt.pair, pair)
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	codec, fs := newTestCodec(t)

	files, err := codec.List()
	require.NoError(t, err)
	assert.Empty(t, files, "missing directory lists nothing")

	_, err = codec.Save(sampleStore(), "b.txt")
	require.NoError(t, err)
	_, err = codec.Save(vowel.NewStore(), "a.txt")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, filepath.Join("app_data", "notes.md"), []byte("x"), 0o644))

	files, err = codec.List()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, 0, files[0].Examples)
	assert.Equal(t, "b.txt", files[1].Name)
	assert.Equal(t, 7, files[1].Examples)
	assert.Positive(t, files[1].Size)
	require.NoError(t, files[1].Err)
}
