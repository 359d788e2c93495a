// ABOUTME: Immutable record of one executed operation with derived result
// ABOUTME: Round-trips through histfile.Record; loads recompute and never trust stored results

package calc

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dstefano/abaco/internal/histfile"
)

// Calculation is one executed operation: its operands, its derived result,
// and the instant it was performed. Values are never mutated after
// construction; history and mementos copy them freely.
type Calculation struct {
	Op        Op
	Operand1  decimal.Decimal
	Operand2  decimal.Decimal
	Result    decimal.Decimal
	Timestamp time.Time
}

// NewCalculation computes and records the result of applying op to the
// operands. Domain violations and arithmetic faults fail construction.
func NewCalculation(op Op, a, b decimal.Decimal) (Calculation, error) {
	result, err := op.Apply(a, b)
	if err != nil {
		return Calculation{}, err
	}
	return Calculation{
		Op:        op,
		Operand1:  a,
		Operand2:  b,
		Result:    result,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Record converts the calculation to its flat on-disk form.
func (c Calculation) Record() histfile.Record {
	return histfile.Record{
		Operation: c.Op.String(),
		Operand1:  c.Operand1.String(),
		Operand2:  c.Operand2.String(),
		Result:    c.Result.String(),
		Timestamp: c.Timestamp.Format(time.RFC3339Nano),
	}
}

// CalculationFromRecord rebuilds a Calculation from its serialized form. The
// result is always recomputed from the operation and operands; a stored
// result that disagrees is logged as a warning and the recomputed value wins.
func CalculationFromRecord(rec histfile.Record, logger *slog.Logger) (Calculation, error) {
	op, err := ParseOp(rec.Operation)
	if err != nil {
		return Calculation{}, err
	}

	a, err := decimal.NewFromString(rec.Operand1)
	if err != nil {
		return Calculation{}, operationErrorf("Invalid calculation data: operand1 %q", rec.Operand1)
	}
	b, err := decimal.NewFromString(rec.Operand2)
	if err != nil {
		return Calculation{}, operationErrorf("Invalid calculation data: operand2 %q", rec.Operand2)
	}
	stored, err := decimal.NewFromString(rec.Result)
	if err != nil {
		return Calculation{}, operationErrorf("Invalid calculation data: result %q", rec.Result)
	}
	ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		return Calculation{}, operationErrorf("Invalid calculation data: timestamp %q", rec.Timestamp)
	}

	computed, err := op.Apply(a, b)
	if err != nil {
		return Calculation{}, err
	}
	if !computed.Equal(stored) {
		logger.Warn("loaded calculation result differs from computed result",
			"operation", op.String(),
			"stored", stored.String(),
			"computed", computed.String())
	}

	return Calculation{
		Op:        op,
		Operand1:  a,
		Operand2:  b,
		Result:    computed,
		Timestamp: ts,
	}, nil
}

// Equal compares by value: operation, operands, and result. Timestamps are
// deliberately excluded.
func (c Calculation) Equal(other Calculation) bool {
	return c.Op == other.Op &&
		c.Operand1.Equal(other.Operand1) &&
		c.Operand2.Equal(other.Operand2) &&
		c.Result.Equal(other.Result)
}

// FormatResult renders the result rounded to the given number of decimal
// places with trailing zeros trimmed.
func (c Calculation) FormatResult(precision int) string {
	return FormatDecimal(c.Result, precision)
}

// FormatDecimal renders a decimal rounded to the given number of decimal
// places with trailing zeros trimmed.
func FormatDecimal(d decimal.Decimal, precision int) string {
	if precision < 0 {
		precision = 0
	}
	fixed := d.StringFixed(int32(precision))
	if !strings.Contains(fixed, ".") {
		return fixed
	}
	fixed = strings.TrimRight(fixed, "0")
	return strings.TrimSuffix(fixed, ".")
}

// String renders the calculation as "Addition(2, 3) = 5".
func (c Calculation) String() string {
	return fmt.Sprintf("%s(%s, %s) = %s", c.Op, c.Operand1, c.Operand2, c.Result)
}
