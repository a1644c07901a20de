package utg962

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSamples(t *testing.T) {
	path := writeTempFile(t, "pulse.txt",
		"# test dalgası\n"+
			"0.5\n"+
			"\n"+
			"-0.25\n"+
			"  1.0  \n"+
			"# son yorum\n")

	samples, err := ReadSamples(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.25, 1.0}, samples)
}

func TestReadSamplesBadLine(t *testing.T) {
	path := writeTempFile(t, "bad.txt", "0.5\nabc\n")

	_, err := ReadSamples(path)
	assert.Error(t, err)
}

func TestReadSamplesMissingFile(t *testing.T) {
	_, err := ReadSamples(filepath.Join(t.TempDir(), "yok.txt"))
	assert.Error(t, err)
}

func TestReadSamplesCSV(t *testing.T) {
	path := writeTempFile(t, "pulse.csv", "0.5\n-0.25\n1.0\n")

	samples, err := ReadSamplesCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.25, 1.0}, samples)
}

func TestReadSamplesCSVUsesFirstColumn(t *testing.T) {
	path := writeTempFile(t, "multi.csv", "0.5,99\n-0.25,42\n")

	samples, err := ReadSamplesCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.25}, samples)
}

func TestReadSamplesCSVBadField(t *testing.T) {
	path := writeTempFile(t, "bad.csv", "0.5\nxyz\n")

	_, err := ReadSamplesCSV(path)
	assert.Error(t, err)
}
