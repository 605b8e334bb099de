package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestFindCandidates(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "two.docx"))
	touch(t, filepath.Join(dir, "one.docx"))
	touch(t, filepath.Join(dir, "one.fixed.docx"))
	touch(t, filepath.Join(dir, "notes.txt"))

	candidates, err := FindCandidates(dir, "fixed")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "one.docx"),
		filepath.Join(dir, "two.docx"),
	}, candidates)
}

func TestFindCandidates_CustomMarker(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "doc.docx"))
	touch(t, filepath.Join(dir, "doc.normalized.docx"))

	candidates, err := FindCandidates(dir, "normalized")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "doc.docx")}, candidates)

	// With a different marker the earlier output is a candidate again.
	candidates, err = FindCandidates(dir, "fixed")
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestFindCandidates_EmptyDir(t *testing.T) {
	candidates, err := FindCandidates(t.TempDir(), "fixed")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
