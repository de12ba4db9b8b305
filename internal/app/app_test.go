package app

import (
	"reflect"
	"testing"

	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
)

func TestNewSessionSeedsFromConfig(t *testing.T) {
	cfg := Config{
		Source:      "/src",
		Destination: "host:/dest",
		Exclude:     []string{"*.tmp"},
		Toggle:      "zev",
		Shell:       "ssh -p 2222",
	}
	s := NewSession(cfg)
	if s.Source != "/src" || s.Destination != "host:/dest" {
		t.Fatalf("unexpected paths %q %q", s.Source, s.Destination)
	}
	if s.ActivePanel != state.PanelSource || s.Mode != state.ModeNormal {
		t.Fatalf("unexpected focus %s %s", s.ActivePanel, s.Mode)
	}
	want := []string{"rsync", "-a", "-z", "--progress", "-h", "-e", "ssh -p 2222", "--exclude", "*.tmp", "/src", "host:/dest"}
	if got := rsync.Build(s.Source, s.Destination, s.Options); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	cfg.Exclude[0] = "mutated"
	if s.Options.Exclude[0] != "*.tmp" {
		t.Fatalf("session shares the config exclude slice")
	}
}

func TestNewRunnerUsesOverride(t *testing.T) {
	runner, ok := NewRunner(Config{RsyncPath: "/opt/bin/rsync"}).(*rsync.Supervisor)
	if !ok {
		t.Fatalf("expected a supervisor")
	}
	if runner.Binary != "/opt/bin/rsync" || runner.LockDir == "" {
		t.Fatalf("unexpected supervisor %+v", runner)
	}
}
