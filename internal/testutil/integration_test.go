package testutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func batchArgs(t *testing.T, fake string, extra ...string) ([]string, []string) {
	t.Helper()
	src := t.TempDir() + "/"
	dst := t.TempDir()
	args := append([]string{
		"--batch",
		"--rsync-path", fake,
		"--log-file", filepath.Join(t.TempDir(), "rsync-tui.log"),
		"--source", src,
		"--destination", dst,
	}, extra...)
	return args, []string{"TMPDIR=" + t.TempDir()}
}

func TestBatchRunReportsSuccess(t *testing.T) {
	bin := BuildBinary(t)
	fake := FakeRsync(t, `echo "sending incremental file list"
printf 'file.txt\r     1024  50%%    1.2MB/s    0:00:01\r     2048 100%%    1.5MB/s    0:00:00\n'
echo "warning: something" >&2
exit 0`)
	args, env := batchArgs(t, fake)
	res := RunBinary(t, bin, env, args...)
	if res.Code != 0 {
		t.Fatalf("expected exit 0, got %d\nstdout:\n%s\nstderr:\n%s", res.Code, res.Stdout, res.Stderr)
	}
	for _, want := range []string{
		"Running: rsync",
		"sending incremental file list",
		"[ERR] warning: something",
		"Sync completed successfully",
	} {
		if !strings.Contains(res.Stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, res.Stdout)
		}
	}
	got := FakeRsyncArgs(t, fake)
	if len(got) < 2 || got[0] != "-a" {
		t.Fatalf("unexpected rsync arguments %q", got)
	}
}

func TestBatchRunPropagatesExitCode(t *testing.T) {
	bin := BuildBinary(t)
	fake := FakeRsync(t, `echo "rsync error: some files could not be transferred" >&2
exit 23`)
	args, env := batchArgs(t, fake)
	res := RunBinary(t, bin, env, args...)
	if res.Code != 23 {
		t.Fatalf("expected exit 23, got %d\nstdout:\n%s", res.Code, res.Stdout)
	}
	if !strings.Contains(res.Stdout, "Sync failed with exit code: 23") {
		t.Fatalf("stdout missing failure line:\n%s", res.Stdout)
	}
}

func TestBatchDryRunAddsFlag(t *testing.T) {
	bin := BuildBinary(t)
	fake := FakeRsync(t, "exit 0")
	args, env := batchArgs(t, fake, "--dry-run")
	res := RunBinary(t, bin, env, args...)
	if res.Code != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", res.Code, res.Stdout)
	}
	found := false
	for _, arg := range FakeRsyncArgs(t, fake) {
		if arg == "-n" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected -n in %q", FakeRsyncArgs(t, fake))
	}
}

func TestUnknownToggleIsRejected(t *testing.T) {
	bin := BuildBinary(t)
	res := RunBinary(t, bin, nil, "--batch", "--toggle", "Q", "/a", "/b")
	if res.Code == 0 {
		t.Fatalf("expected non-zero exit for unknown toggle key")
	}
}
