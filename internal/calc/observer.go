// ABOUTME: History observers notified after each committed calculation
// ABOUTME: LoggingObserver writes a structured log line; AutoSaveObserver persists history

package calc

import "log/slog"

// HistoryObserver is notified once per successfully appended calculation,
// after it is already part of the history. Observers are best-effort side
// channels: a failing observer never rolls back the calculation.
type HistoryObserver interface {
	Notify(c Calculation)
}

// LoggingObserver logs every recorded calculation.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a LoggingObserver writing to the given logger.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Notify writes a structured log line for the calculation.
func (o *LoggingObserver) Notify(c Calculation) {
	o.logger.Info("calculation performed",
		"operation", c.Op.String(),
		"operand1", c.Operand1.String(),
		"operand2", c.Operand2.String(),
		"result", c.Result.String())
}

// AutoSaveObserver persists the owning calculator's history after each
// calculation when auto-save is enabled in its configuration.
type AutoSaveObserver struct {
	calc *Calculator
}

// NewAutoSaveObserver creates an AutoSaveObserver bound to the given
// calculator.
func NewAutoSaveObserver(calc *Calculator) *AutoSaveObserver {
	return &AutoSaveObserver{calc: calc}
}

// Notify saves the calculator's history if auto-save is enabled. Save
// failures are logged, never propagated.
func (o *AutoSaveObserver) Notify(Calculation) {
	if !o.calc.cfg.AutoSaveEnabled() {
		return
	}
	if err := o.calc.SaveHistory(); err != nil {
		o.calc.logger.Warn("auto-save failed", "error", err)
	}
}
