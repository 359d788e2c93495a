// ABOUTME: Closed set of arithmetic operations over decimal operands
// ABOUTME: ParseOp maps command or display names to an Op; Apply validates then computes

package calc

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Op identifies one arithmetic operation. The value is the display name used
// in history entries and on disk.
type Op string

const (
	OpAddition           Op = "Addition"
	OpSubtraction        Op = "Subtraction"
	OpMultiplication     Op = "Multiplication"
	OpDivision           Op = "Division"
	OpPower              Op = "Power"
	OpRoot               Op = "Root"
	OpModulus            Op = "Modulus"
	OpIntegerDivision    Op = "IntegerDivision"
	OpPercentage         Op = "Percentage"
	OpAbsoluteDifference Op = "AbsoluteDifference"
)

// divPrecision is the number of decimal places carried through inexact
// division and exponentiation.
const divPrecision = 28

// maxPowDigits bounds the magnitude of exponentiation results. Anything
// larger is treated as a calculation fault rather than allocating
// arbitrarily huge coefficients.
const maxPowDigits = 1000

// parseNames maps lowercase command names and display names to operations.
var parseNames = map[string]Op{
	"add":                 OpAddition,
	"addition":            OpAddition,
	"subtract":            OpSubtraction,
	"subtraction":         OpSubtraction,
	"multiply":            OpMultiplication,
	"multiplication":      OpMultiplication,
	"divide":              OpDivision,
	"division":            OpDivision,
	"power":               OpPower,
	"root":                OpRoot,
	"modulus":             OpModulus,
	"integer_division":    OpIntegerDivision,
	"integerdivision":     OpIntegerDivision,
	"percentage":          OpPercentage,
	"absolute_difference": OpAbsoluteDifference,
	"absolutedifference":  OpAbsoluteDifference,
}

// ParseOp resolves a command name ("add") or display name ("Addition") to an
// Op. Unrecognized names fail with an OperationError.
func ParseOp(name string) (Op, error) {
	op, ok := parseNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", operationErrorf("Unknown operation: %s", name)
	}
	return op, nil
}

// String returns the display name.
func (o Op) String() string {
	return string(o)
}

// Validate checks the operand domain preconditions without computing.
func (o Op) Validate(a, b decimal.Decimal) error {
	switch o {
	case OpDivision, OpModulus, OpIntegerDivision, OpPercentage:
		if b.IsZero() {
			return operationErrorf("Division by zero is not allowed")
		}
	case OpPower:
		if b.IsNegative() {
			return operationErrorf("Negative exponents are not supported")
		}
	case OpRoot:
		if b.IsZero() {
			return operationErrorf("Zero root is undefined")
		}
		if a.IsNegative() {
			return operationErrorf("Cannot calculate root of negative number")
		}
	}
	return nil
}

// Apply validates the operands and computes the result. Arithmetic faults
// outside the validated domain (extreme exponents, library errors) surface
// as a "Calculation failed" OperationError.
func (o Op) Apply(a, b decimal.Decimal) (result decimal.Decimal, err error) {
	if err := o.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = decimal.Decimal{}
			err = calcFaultErrorf("%v", r)
		}
	}()

	switch o {
	case OpAddition:
		return a.Add(b), nil
	case OpSubtraction:
		return a.Sub(b), nil
	case OpMultiplication:
		return a.Mul(b), nil
	case OpDivision:
		return a.DivRound(b, divPrecision), nil
	case OpPower:
		return pow(a, b)
	case OpRoot:
		return root(a, b)
	case OpModulus:
		return a.Mod(b), nil
	case OpIntegerDivision:
		q, _ := a.QuoRem(b, 0)
		return q, nil
	case OpPercentage:
		return a.DivRound(b, divPrecision).Mul(decimal.NewFromInt(100)), nil
	case OpAbsoluteDifference:
		return a.Sub(b).Abs(), nil
	default:
		return decimal.Decimal{}, operationErrorf("Unknown operation: %s", o)
	}
}

// pow computes a**b for b >= 0, guarding against results whose magnitude
// would exhaust memory.
func pow(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := checkPowMagnitude(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	res, err := a.PowWithPrecision(b, divPrecision)
	if err != nil {
		return decimal.Decimal{}, calcFaultErrorf("%v", err)
	}
	return res, nil
}

// root computes the b-th root of a as a**(1/b). The domain (a >= 0, b != 0)
// is already validated.
func root(a, b decimal.Decimal) (decimal.Decimal, error) {
	deg := decimal.NewFromInt(1).DivRound(b, divPrecision)
	res, err := a.PowWithPrecision(deg, divPrecision)
	if err != nil {
		return decimal.Decimal{}, calcFaultErrorf("%v", err)
	}
	return res, nil
}

// checkPowMagnitude rejects exponentiations whose result would carry more
// than maxPowDigits integer digits.
func checkPowMagnitude(a, b decimal.Decimal) error {
	base, _ := a.Abs().Float64()
	exp, _ := b.Float64()
	if base <= 1 || exp <= 0 {
		return nil
	}
	digits := exp * math.Log10(base)
	if math.IsInf(digits, 0) || digits > maxPowDigits {
		return calcFaultErrorf("exponent %s exceeds supported magnitude", b)
	}
	return nil
}
