package app

import (
	"context"
	"errors"
	"os"

	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/batch"
	"github.com/atomicstack/rsync-tui/internal/logging/events"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
	"github.com/atomicstack/rsync-tui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool

	Source      string
	Destination string
	Exclude     []string
	Toggle      string
	Shell       string
	RsyncPath   string

	Batch  bool
	DryRun bool
}

// NewSession builds the starting session from cfg.
func NewSession(cfg Config) *state.Session {
	s := state.New()
	s.Source = cfg.Source
	s.Destination = cfg.Destination
	if len(cfg.Exclude) > 0 {
		s.Options.Exclude = append([]string(nil), cfg.Exclude...)
	}
	if cfg.Shell != "" {
		s.Options.Shell = cfg.Shell
	}
	for _, r := range cfg.Toggle {
		s.Options.Toggle(rsync.IndexForKey(string(r)))
	}
	return s
}

// NewRunner returns the supervisor that executes rsync for cfg.
func NewRunner(cfg Config) backend.Runner {
	return &rsync.Supervisor{Binary: cfg.RsyncPath, LockDir: os.TempDir()}
}

// Run bootstraps either the Bubble Tea program or a batch run and returns
// the process exit code.
func Run(ctx context.Context, cfg Config) (int, error) {
	session := NewSession(cfg)
	runner := NewRunner(cfg)
	if cfg.Batch {
		code := batch.Run(ctx, runner, session, cfg.DryRun, batch.Output{Log: os.Stdout, Bar: os.Stderr})
		events.App.Exit(code)
		return code, nil
	}

	model := ui.NewModel(session, runner, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	model.Shutdown()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return 1, err
	}
	events.App.Exit(0)
	return 0, nil
}
