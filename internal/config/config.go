package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/rsync-tui/internal/app"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth       = "RSYNC_TUI_WIDTH"
	envHeight      = "RSYNC_TUI_HEIGHT"
	envShowFooter  = "RSYNC_TUI_FOOTER"
	envTrace       = "RSYNC_TUI_TRACE"
	envLogFile     = "RSYNC_TUI_LOG_FILE"
	envSource      = "RSYNC_TUI_SOURCE"
	envDestination = "RSYNC_TUI_DESTINATION"
	envExclude     = "RSYNC_TUI_EXCLUDE"
	envToggle      = "RSYNC_TUI_TOGGLE"
	envShell       = "RSYNC_TUI_SHELL"
	envRsyncPath   = "RSYNC_TUI_RSYNC_PATH"
	envBatch       = "RSYNC_TUI_BATCH"
	envDryRun      = "RSYNC_TUI_DRY_RUN"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Positional
// arguments fill the source and destination when the flags leave them empty.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("rsync-tui", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help bar")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	source := fs.StringP("source", "s", envOrDefault(env, envSource, ""), "initial source path")
	destination := fs.StringP("destination", "d", envOrDefault(env, envDestination, ""), "initial destination path")
	exclude := fs.StringArrayP("exclude", "x", envOrList(env, envExclude), "exclude pattern passed to rsync (repeatable)")
	toggle := fs.String("toggle", envOrDefault(env, envToggle, ""), "option keys to flip at startup, e.g. \"zd\"")
	shell := fs.String("shell", envOrDefault(env, envShell, rsync.DefaultShell), "remote shell used by -e")
	rsyncPath := fs.String("rsync-path", envOrDefault(env, envRsyncPath, ""), "rsync binary to execute")
	batch := fs.Bool("batch", envOrBool(env, envBatch, false), "run once without the interface and exit with rsync's status")
	dryRun := fs.BoolP("dry-run", "n", envOrBool(env, envDryRun, false), "force a dry run in batch mode")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, fmt.Errorf("%w\n\nUsage: rsync-tui [flags] [source [destination]]\n%s", err, fs.FlagUsages())
		}
		return Config{}, err
	}
	positional := fs.Args()
	if *source == "" && len(positional) > 0 {
		*source = positional[0]
	}
	if *destination == "" && len(positional) > 1 {
		*destination = positional[1]
	}
	if len(positional) > 2 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(positional[2:], " "))
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Source:      *source,
			Destination: *destination,
			Exclude:     append([]string(nil), (*exclude)...),
			Toggle:      *toggle,
			Shell:       *shell,
			RsyncPath:   *rsyncPath,
			Batch:       *batch,
			DryRun:      *dryRun,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
			"source":      *source,
			"destination": *destination,
			"exclude":     strings.Join(*exclude, ","),
			"toggle":      *toggle,
			"shell":       *shell,
			"rsyncPath":   *rsyncPath,
			"batch":       strconv.FormatBool(*batch),
			"dryRun":      strconv.FormatBool(*dryRun),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrList splits a comma separated variable, dropping empty entries.
func envOrList(env map[string]string, key string) []string {
	v, ok := env[key]
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, pflag.ErrHelp) {
		_, usage, _ := strings.Cut(err.Error(), "\n\n")
		fmt.Fprintln(os.Stdout, usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects configurations the application cannot start with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	for _, r := range cfg.App.Toggle {
		if rsync.IndexForKey(string(r)) < 0 {
			return fmt.Errorf("unknown option key %q in --toggle", r)
		}
	}
	if cfg.App.Batch && (strings.TrimSpace(cfg.App.Source) == "" || strings.TrimSpace(cfg.App.Destination) == "") {
		return fmt.Errorf("batch mode needs both a source and a destination")
	}
	return nil
}
