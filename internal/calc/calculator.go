// ABOUTME: Orchestration core: strategy dispatch, bounded history, memento undo/redo
// ABOUTME: State mutation always commits before observers run; snapshots never alias live state

package calc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dstefano/abaco/internal/config"
	"github.com/dstefano/abaco/internal/histfile"
)

// Store is the persistence collaborator for calculation history.
type Store interface {
	Save(records []histfile.Record) error
	Load() ([]histfile.Record, error)
}

// Calculator coordinates operation execution, the bounded history list,
// undo/redo memento stacks, observer notification, and persistence.
// It is single-owner state: only its own methods mutate history, the stacks,
// or the observer list.
type Calculator struct {
	cfg    *config.Settings
	logger *slog.Logger
	store  Store

	history   []Calculation
	undoStack []*CalculatorMemento
	redoStack []*CalculatorMemento
	strategy  Op
	hasOp     bool
	observers []HistoryObserver
}

// New creates a Calculator with the given configuration, logger, and
// history store.
func New(cfg *config.Settings, logger *slog.Logger, store Store) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Calculator{
		cfg:    cfg,
		logger: logger,
		store:  store,
	}
	c.logger.Info("calculator initialized",
		"precision", cfg.Precision,
		"max_history_size", cfg.MaxHistorySize,
		"auto_save", cfg.AutoSaveEnabled())
	return c
}

// Config returns the calculator's configuration.
func (c *Calculator) Config() *config.Settings {
	return c.cfg
}

// SetOperation selects the operation applied by subsequent
// PerformOperation calls. It stays selected until replaced.
func (c *Calculator) SetOperation(op Op) {
	c.strategy = op
	c.hasOp = true
	c.logger.Debug("operation set", "operation", op.String())
}

// PerformOperation validates both raw operands, executes the selected
// operation, and commits the resulting calculation: one memento pushed onto
// the undo stack, the calculation appended (evicting the oldest entry when
// over capacity), the redo stack cleared, and observers notified in
// registration order. Validation or execution failures abort with zero state
// change.
func (c *Calculator) PerformOperation(a, b string) (decimal.Decimal, error) {
	if !c.hasOp {
		return decimal.Decimal{}, operationErrorf("No operation set")
	}

	x, err := ValidateNumber(a, c.cfg.MaxInput())
	if err != nil {
		return decimal.Decimal{}, err
	}
	y, err := ValidateNumber(b, c.cfg.MaxInput())
	if err != nil {
		return decimal.Decimal{}, err
	}

	calculation, err := NewCalculation(c.strategy, x, y)
	if err != nil {
		var opErr *OperationError
		if errors.As(err, &opErr) && !opErr.fault {
			// Typed domain errors (division by zero, negative exponent, ...)
			// propagate unchanged.
			return decimal.Decimal{}, err
		}
		return decimal.Decimal{}, operationErrorf("Operation failed: %v", err)
	}

	c.undoStack = append(c.undoStack, NewMemento(c.history))
	c.history = append(c.history, calculation)
	if len(c.history) > c.cfg.MaxHistorySize {
		// Appends grow by exactly one, so a single eviction restores the bound.
		c.history = c.history[1:]
	}
	c.redoStack = nil

	c.notifyObservers(calculation)

	return calculation.Result, nil
}

// Undo restores the history captured by the most recent memento. It returns
// false when there is nothing to undo.
func (c *Calculator) Undo() bool {
	if len(c.undoStack) == 0 {
		return false
	}
	m := c.undoStack[len(c.undoStack)-1]
	c.undoStack = c.undoStack[:len(c.undoStack)-1]
	c.redoStack = append(c.redoStack, NewMemento(c.history))
	c.history = m.History()
	return true
}

// Redo reverses the most recent Undo. It returns false when there is
// nothing to redo.
func (c *Calculator) Redo() bool {
	if len(c.redoStack) == 0 {
		return false
	}
	m := c.redoStack[len(c.redoStack)-1]
	c.redoStack = c.redoStack[:len(c.redoStack)-1]
	c.undoStack = append(c.undoStack, NewMemento(c.history))
	c.history = m.History()
	return true
}

// AddObserver registers an observer. Registration order is notification
// order; duplicates are permitted.
func (c *Calculator) AddObserver(o HistoryObserver) {
	c.observers = append(c.observers, o)
}

// RemoveObserver unregisters the first matching registration of o. It is an
// error to remove an observer that is not registered.
func (c *Calculator) RemoveObserver(o HistoryObserver) error {
	for i, registered := range c.observers {
		if registered == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("observer not registered")
}

// notifyObservers runs after the history mutation has committed. Observer
// panics are recovered and logged; they never unwind the append.
func (c *Calculator) notifyObservers(calculation Calculation) {
	for _, o := range c.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logger.Warn("observer failed", "panic", r)
				}
			}()
			o.Notify(calculation)
		}()
	}
}

// History returns a copy of the current history.
func (c *Calculator) History() []Calculation {
	out := make([]Calculation, len(c.history))
	copy(out, c.history)
	return out
}

// CanUndo reports whether an Undo would succeed.
func (c *Calculator) CanUndo() bool {
	return len(c.undoStack) > 0
}

// CanRedo reports whether a Redo would succeed.
func (c *Calculator) CanRedo() bool {
	return len(c.redoStack) > 0
}

// ClearHistory empties the history and both memento stacks together.
// Clearing only the history would let Undo resurrect cleared state.
func (c *Calculator) ClearHistory() {
	c.history = nil
	c.undoStack = nil
	c.redoStack = nil
	c.logger.Info("history cleared")
}

// SaveHistory persists the current history through the store.
func (c *Calculator) SaveHistory() error {
	records := make([]histfile.Record, len(c.history))
	for i, calculation := range c.history {
		records[i] = calculation.Record()
	}
	if err := c.store.Save(records); err != nil {
		return &OperationError{Msg: "Failed to save history", Err: err}
	}
	c.logger.Info("history saved", "entries", len(records))
	return nil
}

// LoadHistory replaces the in-memory history with the persisted one. A
// missing file loads as empty history; any malformed record fails the whole
// load and leaves the in-memory history untouched.
func (c *Calculator) LoadHistory() error {
	records, err := c.store.Load()
	if err != nil {
		return &OperationError{Msg: "Failed to load history", Err: err}
	}

	loaded := make([]Calculation, 0, len(records))
	for _, rec := range records {
		calculation, err := CalculationFromRecord(rec, c.logger)
		if err != nil {
			return &OperationError{Msg: "Failed to load history", Err: err}
		}
		loaded = append(loaded, calculation)
	}

	c.history = loaded
	c.logger.Info("history loaded", "entries", len(loaded))
	return nil
}
