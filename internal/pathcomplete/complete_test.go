package pathcomplete

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mkTree(t *testing.T, dirs []string, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644))
	}
	return root
}

func TestCompleteEmpty(t *testing.T) {
	_, ok := Complete("")
	require.False(t, ok)
}

func TestCompleteExistingDirectory(t *testing.T) {
	root := mkTree(t, []string{"photos"}, nil)
	dir := filepath.Join(root, "photos")

	got, ok := Complete(dir)
	require.True(t, ok)
	require.Equal(t, dir+sep, got)

	_, ok = Complete(dir + sep)
	require.False(t, ok, "directory already in its separator form")
}

func TestCompleteSingleMatch(t *testing.T) {
	root := mkTree(t, []string{"music"}, []string{"notes.txt"})

	got, ok := Complete(filepath.Join(root, "no"))
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "notes.txt"), got)

	got, ok = Complete(filepath.Join(root, "mu"))
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "music")+sep, got)
}

func TestCompleteCommonPrefix(t *testing.T) {
	root := mkTree(t, nil, []string{"hello_world", "hello_there"})

	got, ok := Complete(filepath.Join(root, "he"))
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "hello_"), got)

	_, ok = Complete(filepath.Join(root, "hello_"))
	require.False(t, ok, "no forward progress")
}

func TestCompleteNoMatchOrMissingParent(t *testing.T) {
	root := mkTree(t, nil, []string{"alpha"})

	_, ok := Complete(filepath.Join(root, "zzz"))
	require.False(t, ok)

	_, ok = Complete(filepath.Join(root, "missing", "al"))
	require.False(t, ok)
}

func TestCompleteRelativeUsesWorkingDirectory(t *testing.T) {
	root := mkTree(t, []string{"backups"}, []string{"readme"})
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, ok := Complete("back")
	require.True(t, ok)
	require.Equal(t, "backups"+sep, got)
}

func TestSuggestRanksAndLimits(t *testing.T) {
	root := mkTree(t, []string{"docs"}, []string{"draft.md", "data.csv", "index.html"})
	base := root + sep

	got := Suggest(filepath.Join(root, "d"), 10)
	require.Len(t, got, 4)
	require.Equal(t, base+"docs"+sep, got[0], "closest name ranks first")

	got = Suggest(filepath.Join(root, "DRA"), 10)
	require.Equal(t, []string{base + "draft.md"}, got)

	require.Len(t, Suggest(base, 2), 2)
	require.Nil(t, Suggest(base, 0))
	require.Nil(t, Suggest(filepath.Join(root, "missing", "x"), 5))
}

func TestCommonPrefixIsOrderIndependent(t *testing.T) {
	a := commonPrefix([]string{"hello_world", "hello_there", "help"})
	b := commonPrefix([]string{"help", "hello_there", "hello_world"})
	require.Equal(t, "hel", a)
	require.Equal(t, a, b)
}
