package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/atomicstack/rsync-tui/internal/app"
	"github.com/atomicstack/rsync-tui/internal/config"
	"github.com/atomicstack/rsync-tui/internal/logging"
	"github.com/atomicstack/rsync-tui/internal/logging/events"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code, err := app.Run(ctx, runtimeCfg.App)
	stop()
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records what the run will act on: the resolved rsync
// binary, the seeded paths and whether stdout is a usable terminal.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	mode := "interactive"
	if cfg.App.Batch {
		mode = "batch"
	}
	payload := map[string]interface{}{
		"argv":        cfg.Args,
		"flags":       cfg.Flags,
		"mode":        mode,
		"source":      cfg.App.Source,
		"destination": cfg.App.Destination,
		"terminal":    inspectTerminal(int(os.Stdout.Fd())),
	}
	binary := cfg.App.RsyncPath
	if binary == "" {
		binary = rsync.Program
	}
	if resolved, err := exec.LookPath(binary); err == nil {
		payload["rsync"] = resolved
	} else {
		payload["rsyncError"] = err.Error()
	}
	return payload
}

type terminalInfo struct {
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func inspectTerminal(fd int) terminalInfo {
	if fd < 0 || !term.IsTerminal(fd) {
		return terminalInfo{}
	}
	info := terminalInfo{IsTerminal: true}
	if width, height, err := term.GetSize(fd); err == nil {
		info.Width, info.Height = width, height
	} else {
		info.Error = err.Error()
	}
	return info
}
