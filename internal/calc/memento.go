// ABOUTME: Immutable snapshot of the full history list for undo/redo
// ABOUTME: Snapshots copy the history slice so later mutations cannot corrupt them

package calc

import (
	"log/slog"
	"time"

	"github.com/dstefano/abaco/internal/histfile"
)

// CalculatorMemento captures the entire history list at one point in time.
// The snapshot is an independent copy; it never aliases the live history.
type CalculatorMemento struct {
	history   []Calculation
	timestamp time.Time
}

// NewMemento copies the given history and stamps the current instant.
func NewMemento(history []Calculation) *CalculatorMemento {
	snapshot := make([]Calculation, len(history))
	copy(snapshot, history)
	return &CalculatorMemento{
		history:   snapshot,
		timestamp: time.Now().UTC(),
	}
}

// History returns a copy of the snapshot.
func (m *CalculatorMemento) History() []Calculation {
	out := make([]Calculation, len(m.history))
	copy(out, m.history)
	return out
}

// Timestamp returns the instant the snapshot was taken.
func (m *CalculatorMemento) Timestamp() time.Time {
	return m.timestamp
}

// MementoData is the serialized form of a memento.
type MementoData struct {
	History   []histfile.Record `json:"history"`
	Timestamp string            `json:"timestamp"`
}

// Data serializes the snapshot, each calculation via its own record form.
func (m *CalculatorMemento) Data() MementoData {
	records := make([]histfile.Record, len(m.history))
	for i, c := range m.history {
		records[i] = c.Record()
	}
	return MementoData{
		History:   records,
		Timestamp: m.timestamp.Format(time.RFC3339Nano),
	}
}

// MementoFromData rebuilds a memento from its serialized form. A missing
// history or timestamp fails, as does an unparseable timestamp; per-entry
// errors from CalculationFromRecord propagate unchanged.
func MementoFromData(data MementoData, logger *slog.Logger) (*CalculatorMemento, error) {
	if data.History == nil {
		return nil, operationErrorf("Invalid memento data: missing history")
	}
	if data.Timestamp == "" {
		return nil, operationErrorf("Invalid memento data: missing timestamp")
	}
	ts, err := time.Parse(time.RFC3339Nano, data.Timestamp)
	if err != nil {
		return nil, operationErrorf("Invalid memento data: timestamp %q", data.Timestamp)
	}

	history := make([]Calculation, 0, len(data.History))
	for _, rec := range data.History {
		c, err := CalculationFromRecord(rec, logger)
		if err != nil {
			return nil, err
		}
		history = append(history, c)
	}
	return &CalculatorMemento{history: history, timestamp: ts}, nil
}
