package rsync

import "strings"

// Program is the first token of every built command.
const Program = "rsync"

// Build returns the argument vector for syncing source to destination. Flags
// follow the canonical option order, excludes keep insertion order, and the
// two positional arguments are always last, even when empty.
func Build(source, destination string, opts Options) []string {
	args := []string{Program}
	for i := 0; i < OptionCount; i++ {
		if !opts.Enabled(i) {
			continue
		}
		args = append(args, Catalog[i].Flag)
		if i == OptRemoteShell {
			shell := strings.TrimSpace(opts.Shell)
			if shell == "" {
				shell = DefaultShell
			}
			args = append(args, shell)
		}
	}
	for _, pattern := range opts.Exclude {
		args = append(args, "--exclude", pattern)
	}
	return append(args, source, destination)
}

// Format renders the command for display.
func Format(source, destination string, opts Options) string {
	return strings.Join(Build(source, destination, opts), " ")
}
