package rsync

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDefaultOptions(t *testing.T) {
	cmd := Build("/src", "/dest", DefaultOptions())
	require.Equal(t, []string{"rsync", "-a", "-v", "--progress", "-h", "/src", "/dest"}, cmd)
}

func TestBuildAllDisabled(t *testing.T) {
	cmd := Build("/src", "/dest", Options{})
	require.Equal(t, []string{"rsync", "/src", "/dest"}, cmd)
}

func TestBuildEmptyPositionalsStayLast(t *testing.T) {
	cmd := Build("", "", DefaultOptions())
	require.Equal(t, "", cmd[len(cmd)-2])
	require.Equal(t, "", cmd[len(cmd)-1])
}

func TestBuildCanonicalOrder(t *testing.T) {
	opts := Options{
		Archive: true, Verbose: true, Compress: true, DryRun: true, Progress: true,
		Delete: true, HumanReadable: true, RemoteShell: true, RemoveSourceFiles: true,
		DeleteExcluded: true, PerFileProgress: true,
		Exclude: []string{"*.log", "tmp/"},
	}
	want := []string{
		"rsync", "-a", "-v", "-z", "-n", "--progress", "--delete", "-h",
		"-e", "ssh", "--remove-source-files", "--delete-excluded", "--info=progress2",
		"--exclude", "*.log", "--exclude", "tmp/",
		"/home/user", "server:/backup",
	}
	require.Equal(t, want, Build("/home/user", "server:/backup", opts))
}

func TestBuildCustomShell(t *testing.T) {
	opts := Options{RemoteShell: true, Shell: "ssh -p 2222"}
	require.Equal(t, []string{"rsync", "-e", "ssh -p 2222", "a", "b"}, Build("a", "b", opts))
}

func TestBuildPositionalsLastForEveryCombination(t *testing.T) {
	for mask := 0; mask < 1<<OptionCount; mask++ {
		var opts Options
		for i := 0; i < OptionCount; i++ {
			if mask&(1<<i) != 0 {
				opts.Toggle(i)
			}
		}
		opts.Exclude = []string{"x"}
		cmd := Build("SRC", "DST", opts)
		require.Equal(t, "rsync", cmd[0])
		require.Equal(t, "SRC", cmd[len(cmd)-2], "mask %b", mask)
		require.Equal(t, "DST", cmd[len(cmd)-1], "mask %b", mask)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Exclude = []string{"b", "a"}
	first := Build("/s", "/d", opts)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Build("/s", "/d", opts))
	}
}

func TestFormat(t *testing.T) {
	opts := Options{Archive: true}
	require.Equal(t, "rsync -a /src /dest", Format("/src", "/dest", opts))
}
