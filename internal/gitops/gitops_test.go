package gitops

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func gitLog(t *testing.T, dir, format string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "--format="+format, "-1")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func TestAuthorString(t *testing.T) {
	assert.Equal(t, "Stakeledger <stakeledger@localhost>", Author{Name: "Stakeledger", Email: "stakeledger@localhost"}.String())
}

func TestInit(t *testing.T) {
	requireGit(t)
	repo := Open(t.TempDir())
	assert.False(t, repo.Exists())

	require.NoError(t, repo.Init(context.Background()))
	assert.True(t, repo.Exists())

	// A second Init leaves the repository alone.
	require.NoError(t, repo.Init(context.Background()))
}

func TestCommitAll(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	repo := Open(dir)
	require.NoError(t, repo.Init(context.Background()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.csv"), []byte("id,name\n"), 0o644))

	hash, err := repo.CommitAll(context.Background(), "seed: sample workspace", Author{Name: "Test Author", Email: "test@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Contains(t, gitLog(t, dir, "%s"), "seed: sample workspace")
	assert.Contains(t, gitLog(t, dir, "%an <%ae>"), "Test Author <test@example.com>")
}

func TestCommitAll_NotARepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	_, err := Open(dir).CommitAll(context.Background(), "msg", Author{Name: "a", Email: "a@b"})
	assert.Error(t, err)
}
