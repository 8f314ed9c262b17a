// Package calc implements the four-function calculator interpreter shared by
// the button grid and the console front-ends.
package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrorText replaces the display buffer when an operand fails to parse.
const ErrorText = "Error"

var (
	// ErrUnknownKey is returned by Press for labels outside the button grid.
	ErrUnknownKey = errors.New("calc: unknown key")
	// ErrInvalidInput is returned by EvalLine for any malformed expression.
	ErrInvalidInput = errors.New("calc: invalid input")
)

// Operator is an arithmetic operation awaiting its second operand.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return ""
	}
}

// ParseOperator maps "+", "-", "*" and "/" to their operators.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	default:
		return OpNone, false
	}
}

// Apply combines a and b with op. Division by zero yields NaN.
//
// OpNone (and anything unrecognized) returns b unchanged, so "=" without a
// pending operator re-displays the entered number.
func Apply(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	default:
		return b
	}
}

// ParseOperand parses s as a float64 after trimming surrounding whitespace.
// Out-of-range values are not an error: they saturate to ±Inf. The only
// accepted spellings of the special values are "NaN" and "Infinity", each
// with an optional sign.
func ParseOperand(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if err := checkSpecialSpelling(s); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}

// checkSpecialSpelling rejects the case-insensitive "inf", "infinity" and
// "nan" forms strconv accepts beyond the canonical ones.
func checkSpecialSpelling(s string) error {
	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return nil
	}
	switch {
	case strings.EqualFold(body, "inf"), strings.EqualFold(body, "infinity"):
		if body != "Infinity" {
			return &strconv.NumError{Func: "ParseOperand", Num: s, Err: strconv.ErrSyntax}
		}
	case strings.EqualFold(body, "nan"):
		if body != "NaN" {
			return &strconv.NumError{Func: "ParseOperand", Num: s, Err: strconv.ErrSyntax}
		}
	}
	return nil
}

// State is a snapshot of the interpreter.
type State struct {
	Accumulator float64
	Pending     Operator
	Display     string
}

// Calculator is the button-driven interpreter. It is not safe for concurrent
// use; front-ends drive it from a single loop.
type Calculator struct {
	st State
}

// New returns a calculator with an empty display and no pending operator.
func New() *Calculator {
	return &Calculator{}
}

// State returns a copy of the current state.
func (c *Calculator) State() State { return c.st }

// Display returns the display buffer.
func (c *Calculator) Display() string { return c.st.Display }

// Digit appends d to the display buffer as-is.
func (c *Calculator) Digit(d rune) {
	c.st.Display += string(d)
}

// Clear resets the calculator to its initial state.
func (c *Calculator) Clear() {
	c.st = State{}
}

// Operator commits the display buffer as the left operand and stores op.
// A parse failure shows ErrorText and keeps the previous operand and operator.
func (c *Calculator) Operator(op Operator) {
	v, err := ParseOperand(c.st.Display)
	if err != nil {
		c.st.Display = ErrorText
		return
	}
	c.st.Accumulator = v
	c.st.Pending = op
	c.st.Display = ""
}

// Equals applies the pending operator to the accumulator and the display
// buffer. The operator and accumulator stay in place, so repeated presses
// re-apply the operation to the shown result.
func (c *Calculator) Equals() {
	v, err := ParseOperand(c.st.Display)
	if err != nil {
		c.st.Display = ErrorText
		return
	}
	c.st.Display = FormatResult(Apply(c.st.Accumulator, v, c.st.Pending))
}

// Press dispatches a button label: a single digit, an operator, "C" or "=".
func (c *Calculator) Press(key string) error {
	switch {
	case key == "C":
		c.Clear()
	case key == "=":
		c.Equals()
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		c.Digit(rune(key[0]))
	default:
		op, ok := ParseOperator(key)
		if !ok {
			return ErrUnknownKey
		}
		c.Operator(op)
	}
	return nil
}
