// Package testutil holds helpers shared by tests that exercise the real
// process boundary: a scripted stand-in for rsync and a built copy of the
// rsync-tui binary.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireShell skips the test when no POSIX shell is available.
func RequireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// FakeRsync writes an executable shell script that stands in for rsync and
// returns its path. The script receives the composed arguments unchanged;
// "$@" is also recorded to args.txt next to the script.
func FakeRsync(t *testing.T, body string) string {
	t.Helper()
	RequireShell(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "rsync")
	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > \"" + filepath.Join(dir, "args.txt") + "\"\n" +
		body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake rsync: %v", err)
	}
	return path
}

// FakeRsyncArgs returns the arguments the fake at path was last invoked with.
func FakeRsyncArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "args.txt"))
	if err != nil {
		t.Fatalf("failed to read recorded args: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
