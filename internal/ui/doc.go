// Package ui contains the Bubble Tea program that drives an rsync session.
// The Model type focuses on message orchestration, while the session state
// machine in internal/state owns every transition.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are mapped to state.Event values by the key map in keys.go
//     and applied with state.Session.Apply. The returned state.Effect tells the
//     model whether to start, cancel or abandon a run, or to quit.
//
// Runs:
//   - A run request is handed to the command bus (internal/ui/command), which
//     starts a backend.Job. waitForRunEvent turns each job event into a
//     message and the dispatcher folds it into the session on the event loop,
//     so the session is never touched from another goroutine.
//   - While a run is active a tick message refreshes the screen every 100ms.
//
// Rendering is read-only over the session: View lays out the source,
// destination, options, preview/log and progress panels using the styles in
// internal/theme.
package ui
