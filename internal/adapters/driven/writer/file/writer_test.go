package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
)

func TestWriteGroup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converted_test.sdf")
	blocks := []domain.MolBlock{
		{ID: "blk-1", Lines: []string{"Methane", "M  END", "$$$$"}},
		{ID: "blk-2", Lines: []string{"Ethanol", "M  END", "$$$$"}},
	}

	writer := New()
	require.NoError(t, writer.WriteGroup(context.Background(), path, blocks))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Methane\nM  END\n$$$$\nEthanol\nM  END\n$$$$\n", string(data))
}

func TestWriteGroup_TruncatesPriorContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converted_test.sdf")
	require.NoError(t, os.WriteFile(path, []byte("stale content from an earlier run\n"), 0600))

	writer := New()
	blocks := []domain.MolBlock{{ID: "blk-1", Lines: []string{"Methane", "$$$$"}}}
	require.NoError(t, writer.WriteGroup(context.Background(), path, blocks))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Methane\n$$$$\n", string(data))
}

func TestWriteGroup_EmptyGroupCreatesEmptyFile(t *testing.T) {
	// The converter never calls WriteGroup for an empty group; when
	// called anyway the session still opens and closes cleanly.
	path := filepath.Join(t.TempDir(), "converted_test.sdf")

	writer := New()
	require.NoError(t, writer.WriteGroup(context.Background(), path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteGroup_BadPath(t *testing.T) {
	writer := New()
	err := writer.WriteGroup(context.Background(),
		filepath.Join(t.TempDir(), "missing", "dir", "out.sdf"), nil)
	assert.Error(t, err)
}

func TestWriteGroup_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "converted_test.sdf")
	writer := New()
	err := writer.WriteGroup(ctx, path, []domain.MolBlock{{Lines: []string{"Methane"}}})
	assert.ErrorIs(t, err, context.Canceled)
}
