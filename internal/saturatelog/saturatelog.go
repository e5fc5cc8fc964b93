// Package saturatelog wires the saturation loop's progress logging
// (kept apart from the loop's message stream) to commonlog, the same structured
// logger kanso-lang-kanso's LSP entrypoint configures
// (cmd/kanso-lsp/main.go's commonlog.Configure), repurposed here from
// protocol-server logging to engine-progress logging.
package saturatelog

import "github.com/tliron/commonlog"

// Name is the commonlog logger name every saturation-loop component
// logs under.
const Name = "twee.saturate"

// Configure wires up commonlog at the given verbosity (0 = default,
// higher = more verbose), mirroring commonlog.Configure(1, nil) in the
// teacher's LSP entrypoint.
func Configure(verbosity int) {
	commonlog.Configure(verbosity, nil)
}

// Logger is the narrow read surface the saturation loop needs:
// per-iteration debug tracing plus level-appropriate progress
// messages (NewActive, ProvedGoal).
type Logger struct {
	log commonlog.Logger
}

// New returns a Logger bound to the shared "twee.saturate" name.
func New() *Logger {
	return &Logger{log: commonlog.GetLogger(Name)}
}

// Iteration logs one complete1 pass at debug level.
func (l *Logger) Iteration(considered, active, passive int) {
	l.log.Debug("complete1", "considered", considered, "active", active, "passive", passive)
}

// NewActive logs a freshly inserted Active rule.
func (l *Logger) NewActive(activeID int, orientation string) {
	l.log.Info("new active rule", "active_id", activeID, "orientation", orientation)
}

// ProvedGoal logs a solved goal.
func (l *Logger) ProvedGoal(goalName string, goalNumber int) {
	l.log.Info("goal proved", "goal", goalName, "number", goalNumber)
}

// Warning logs a non-fatal anomaly (an orphaned passive, a skipped
// oversized overlap).
func (l *Logger) Warning(message string, keysAndValues ...interface{}) {
	l.log.Warning(message, keysAndValues...)
}
