package formant

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/vowel"
)

func newTraceFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "traces/"+name, []byte(content), 0o644))
	}
	return fs
}

func TestTraceSourceListDevices(t *testing.T) {
	t.Parallel()

	fs := newTraceFs(t, map[string]string{
		"b_ee.csv":  "300,2300\n",
		"a_ah.txt":  "700,1200\n",
		"notes.md":  "ignored",
		"sub/x.csv": "1,1\n",
	})
	src := NewTraceSource(fs, "traces", nil)

	devices, err := src.ListDevices()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "a_ah.txt", devices[0].Name)
	assert.Equal(t, 0, devices[0].Index)
	assert.True(t, devices[0].Default)
	assert.Equal(t, "b_ee.csv", devices[1].Name)
	assert.Equal(t, 1, devices[1].Index)
	assert.False(t, devices[1].Default)
}

func TestTraceSourceMissingDir(t *testing.T) {
	t.Parallel()

	src := NewTraceSource(afero.NewMemMapFs(), "nowhere", nil)
	devices, err := src.ListDevices()
	require.NoError(t, err)
	assert.Empty(t, devices)

	err = src.StartStream(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrStream))
}

func TestTraceSourceReplay(t *testing.T) {
	t.Parallel()

	fs := newTraceFs(t, map[string]string{
		"ah.csv": "# f1,f2\n700,1200\n\n0,0\nnoise\n710, 1190\n",
	})
	src := NewTraceSource(fs, "traces", nil)
	require.NoError(t, src.StartStream(0))

	want := []vowel.Pair{
		{F1: 700, F2: 1200},
		{},
		{},
		{F1: 710, F2: 1190},
		{},
		{},
	}
	for i, w := range want {
		got, err := src.Formants()
		require.NoError(t, err, "sample %d", i)
		assert.Equal(t, w, got, "sample %d", i)
	}

	require.NoError(t, src.StopStream())
	require.NoError(t, src.StopStream())

	_, err := src.Formants()
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryAudioSource))
}

func TestTraceSourceRestartRewinds(t *testing.T) {
	t.Parallel()

	fs := newTraceFs(t, map[string]string{"ah.csv": "700,1200\n705,1195\n"})
	src := NewTraceSource(fs, "traces", nil)

	require.NoError(t, src.StartStream(0))
	first, err := src.Formants()
	require.NoError(t, err)
	require.NoError(t, src.StopStream())

	require.NoError(t, src.StartStream(0))
	again, err := src.Formants()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestTryDevice(t *testing.T) {
	t.Parallel()

	fs := newTraceFs(t, map[string]string{"ah.csv": "700,1200\n"})
	src := NewTraceSource(fs, "traces", nil)

	require.NoError(t, TryDevice(src, 0))

	err := TryDevice(src, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrStream))
	assert.Contains(t, err.Error(), "device 3")

	err = TryDevice(src, -1)
	require.Error(t, err)
}

func TestParseSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want vowel.Pair
	}{
		{"700,1200", vowel.Pair{F1: 700, F2: 1200}},
		{" 300.5 , 2250 ", vowel.Pair{F1: 300.5, F2: 2250}},
		{"700", vowel.Pair{}},
		{"a,b", vowel.Pair{}},
		{"700,", vowel.Pair{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseSample(tt.line))
		})
	}
}
