package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.App.Shell != "ssh" {
		t.Fatalf("expected default shell ssh, got %q", cfg.App.Shell)
	}
	if cfg.App.Batch || cfg.App.DryRun || cfg.Logging.Trace {
		t.Fatalf("unexpected boolean defaults %+v", cfg)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"RSYNC_TUI_WIDTH=120",
		"RSYNC_TUI_SOURCE=/env/src",
		"RSYNC_TUI_EXCLUDE=*.tmp, .git",
		"RSYNC_TUI_TRACE=true",
		"RSYNC_TUI_FOOTER=notabool",
	}
	cfg, err := LoadArgs([]string{"--source", "/flag/src", "-x", "node_modules", "--exclude=*.o", "--height", "30"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 30 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.Source != "/flag/src" {
		t.Fatalf("flag should win over env, got %q", cfg.App.Source)
	}
	if want := []string{"node_modules", "*.o"}; !reflect.DeepEqual(cfg.App.Exclude, want) {
		t.Fatalf("expected excludes %v, got %v", want, cfg.App.Exclude)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("invalid env bool should fall back to default")
	}
	if cfg.Flags["source"] != "/flag/src" || cfg.Flags["exclude"] != "node_modules,*.o" {
		t.Fatalf("unexpected flag map %v", cfg.Flags)
	}
}

func TestLoadArgsEnvExcludes(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"RSYNC_TUI_EXCLUDE=*.tmp, ,.git"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"*.tmp", ".git"}; !reflect.DeepEqual(cfg.App.Exclude, want) {
		t.Fatalf("expected %v, got %v", want, cfg.App.Exclude)
	}
}

func TestLoadArgsPositionalPaths(t *testing.T) {
	cfg, err := LoadArgs([]string{"--batch", "-n", "/a/", "host:/b"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Source != "/a/" || cfg.App.Destination != "host:/b" {
		t.Fatalf("unexpected paths %q %q", cfg.App.Source, cfg.App.Destination)
	}
	if !cfg.App.Batch || !cfg.App.DryRun {
		t.Fatalf("expected batch dry run")
	}
	if _, err := LoadArgs([]string{"a", "b", "c"}, nil); err == nil {
		t.Fatalf("expected error for extra arguments")
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--width", "-1"}, "width"},
		{[]string{"--height", "-5"}, "height"},
		{[]string{"--toggle", "zq"}, "unknown option key"},
		{[]string{"--batch", "--source", "/a"}, "batch mode"},
	}
	for _, tc := range cases {
		cfg, err := LoadArgs(tc.args, nil)
		if err != nil {
			t.Fatalf("%v: unexpected load error: %v", tc.args, err)
		}
		err = Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%v: expected error containing %q, got %v", tc.args, tc.want, err)
		}
	}
	cfg, _ := LoadArgs([]string{"--toggle", "zd", "/a", "/b"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadArgsHelpIncludesUsage(t *testing.T) {
	_, err := LoadArgs([]string{"--help"}, nil)
	if err == nil || !strings.Contains(err.Error(), "--rsync-path") {
		t.Fatalf("expected usage in help error, got %v", err)
	}
}
