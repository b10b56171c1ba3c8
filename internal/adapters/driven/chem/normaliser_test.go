package chem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
)

// repairedBlock is a block as the repairer emits it: title plus
// inserted blank program line, counts line, body, end marker,
// property sections, terminator.
func repairedBlock() []string {
	return []string{
		"Methanol",
		"",
		"  2  1  0  0  0  0  0  0  0  0999 V2000",
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0",
		"    1.4000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0",
		"  1  2  1  0  0  0  0",
		"M  END",
		">  <NAME>",
		"Methanol",
		"",
		"$$$$",
	}
}

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestNormalise_CanonicalHeader(t *testing.T) {
	normaliser := New()

	block, err := normaliser.Normalise(context.Background(), repairedBlock())
	require.NoError(t, err)
	require.NotNil(t, block)

	// Three header lines then the reformatted counts line.
	require.Greater(t, len(block.Lines), 4)
	assert.Equal(t, "Methanol", block.Lines[0])
	assert.Equal(t, "", block.Lines[1])
	assert.Equal(t, "", block.Lines[2])
	assert.Equal(t, "  2  1  0  0  0  0  0  0  0  0999 V2000", block.Lines[3])

	// Body and properties survive; the terminator closes the block.
	assert.Contains(t, block.Lines, "M  END")
	assert.Contains(t, block.Lines, ">  <NAME>")
	assert.Equal(t, "$$$$", block.Lines[len(block.Lines)-1])
}

func TestNormalise_AssignsUniqueIDs(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	first, err := normaliser.Normalise(ctx, repairedBlock())
	require.NoError(t, err)
	second, err := normaliser.Normalise(ctx, repairedBlock())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNormalise_AppendsMissingTerminator(t *testing.T) {
	normaliser := New()

	lines := repairedBlock()
	lines = lines[:len(lines)-1] // drop "$$$$"

	block, err := normaliser.Normalise(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, "$$$$", block.Lines[len(block.Lines)-1])
}

func TestNormalise_RejectsWithoutCountsLine(t *testing.T) {
	normaliser := New()

	_, err := normaliser.Normalise(context.Background(), []string{
		"not a molecule",
		"just some text",
		"$$$$",
	})
	assert.ErrorIs(t, err, domain.ErrUnparseableBlock)
}

func TestNormalise_RejectsTruncatedBody(t *testing.T) {
	normaliser := New()

	_, err := normaliser.Normalise(context.Background(), []string{
		"Broken",
		"",
		" 99 12  0  0  0  0  0  0  0  0999 V2000",
		"    0.0000    0.0000    0.0000 C   0  0",
		"M  END",
		"$$$$",
	})
	assert.ErrorIs(t, err, domain.ErrUnparseableBlock)
}

func TestNormalise_RejectsBadCoordinates(t *testing.T) {
	normaliser := New()

	_, err := normaliser.Normalise(context.Background(), []string{
		"Broken",
		"",
		"  1  0  0  0  0  0  0  0  0  0999 V2000",
		"    x.0000    0.0000    0.0000 C   0  0",
		"M  END",
		"$$$$",
	})
	assert.ErrorIs(t, err, domain.ErrUnparseableBlock)
}

func TestNormalise_RejectsNumericElementSymbol(t *testing.T) {
	normaliser := New()

	_, err := normaliser.Normalise(context.Background(), []string{
		"Broken",
		"",
		"  1  0  0  0  0  0  0  0  0  0999 V2000",
		"    0.0000    0.0000    0.0000 9   0  0",
		"M  END",
		"$$$$",
	})
	assert.ErrorIs(t, err, domain.ErrUnparseableBlock)
}

func TestNormalise_RejectsMissingEndMarker(t *testing.T) {
	normaliser := New()

	_, err := normaliser.Normalise(context.Background(), []string{
		"Broken",
		"",
		"  1  0  0  0  0  0  0  0  0  0999 V2000",
		"    0.0000    0.0000    0.0000 C   0  0",
		">  <NAME>",
		"Broken",
		"$$$$",
	})
	assert.ErrorIs(t, err, domain.ErrUnparseableBlock)
}

func TestNormalise_RejectsUnparseableCounts(t *testing.T) {
	normaliser := New()

	_, err := normaliser.Normalise(context.Background(), []string{
		"Broken",
		"",
		"  x  0  0  0  0  0  0  0  0  0999 V2000",
		"M  END",
		"$$$$",
	})
	assert.ErrorIs(t, err, domain.ErrUnparseableBlock)
}

func TestAtomCount(t *testing.T) {
	normaliser := New()

	n, err := normaliser.AtomCount(context.Background(), repairedBlock())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAtomCount_NoCountsLine(t *testing.T) {
	normaliser := New()

	_, err := normaliser.AtomCount(context.Background(), []string{"nothing here"})
	assert.ErrorIs(t, err, domain.ErrUnparseableBlock)
}
