package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mona_vf_npl.sdf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestEnumerate_SplitsAtTerminator(t *testing.T) {
	input := strings.Join([]string{
		"Methane",
		"  1  0  0  0  0  0  0  0  0  0999 V2000",
		">  <NAME>",
		"Methane",
		"$$$$",
		"Ethanol",
		"  3  2  0  0  0  0  0  0  0  0999 V2000",
		">  <NAME>",
		"Ethanol",
		"$$$$",
	}, "\n") + "\n"

	source := New()
	records, err := source.Enumerate(context.Background(), writeInput(t, input))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Methane", records[0].Lines[0])
	assert.Equal(t, "$$$$", records[0].Lines[len(records[0].Lines)-1])
	assert.Equal(t, "Ethanol", records[1].Lines[0])
	assert.Equal(t, "$$$$", records[1].Lines[len(records[1].Lines)-1])
}

func TestEnumerate_TrimsBlankEdges(t *testing.T) {
	input := "\n\nMethane\n>  <NAME>\nMethane\n$$$$\n\n\nEthanol\n$$$$\n"

	source := New()
	records, err := source.Enumerate(context.Background(), writeInput(t, input))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Methane", records[0].Lines[0])
	assert.Equal(t, "Ethanol", records[1].Lines[0])
}

func TestEnumerate_IgnoresContentAfterLastTerminator(t *testing.T) {
	input := "Methane\n$$$$\ntrailing garbage without terminator\n"

	source := New()
	records, err := source.Enumerate(context.Background(), writeInput(t, input))
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"Methane", "$$$$"}, records[0].Lines)
}

func TestEnumerate_EmptyFile(t *testing.T) {
	source := New()
	records, err := source.Enumerate(context.Background(), writeInput(t, ""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEnumerate_MissingFile(t *testing.T) {
	source := New()
	_, err := source.Enumerate(context.Background(), filepath.Join(t.TempDir(), "absent.sdf"))
	assert.Error(t, err)
}

func TestEnumerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := New()
	_, err := source.Enumerate(ctx, writeInput(t, "Methane\n$$$$\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumerate_LongPeakLines(t *testing.T) {
	// MoNA peak lists can put hundreds of kilobytes on a single line.
	peaks := strings.Repeat("123.456 999 ", 20000)
	input := "Methane\n>  <MASS SPECTRAL PEAKS>\n" + peaks + "\n$$$$\n"

	source := New()
	records, err := source.Enumerate(context.Background(), writeInput(t, input))
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Contains(t, records[0].Lines, peaks)
}
