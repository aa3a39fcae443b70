package visualization

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphImageName(t *testing.T) {
	assert.Equal(t, "graph_beta_0.png", GraphImageName(0))
	assert.Equal(t, "graph_beta_0.2.png", GraphImageName(0.2))
	assert.Equal(t, "graph_beta_0.01.png", GraphImageName(0.01))
	assert.Equal(t, "graph_beta_1.png", GraphImageName(1))
}

func TestResolveRunDir_DefaultOverwritesInPlace(t *testing.T) {
	base := t.TempDir()

	dir, err := ResolveRunDir(base, false, "ignored", time.Now())
	require.NoError(t, err)
	assert.Equal(t, base, dir)
}

func TestResolveRunDir_TimestampedSubdirectory(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	dir, err := ResolveRunDir(base, true, "deadbeef-cafe-4000-8000-000000000000", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "run_20260314T092653Z_deadbeef"), dir)
	assert.DirExists(t, dir)
}

func TestResolveRunDir_ShortRunID(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	dir, err := ResolveRunDir(base, true, "abc", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "run_20260314T092653Z_abc"), dir)
}

func TestResolveRunDir_CreatesMissingBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out", "nested")

	dir, err := ResolveRunDir(base, false, "", time.Now())
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
