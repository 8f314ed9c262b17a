package calc

import "strings"

// IsExit reports whether line asks the console loop to quit.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "exit")
}

// EvalLine evaluates a single "<num> <op> <num>" expression. Every kind of
// malformed input (token count, operand, operator) reports ErrInvalidInput.
func EvalLine(line string) (float64, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return 0, ErrInvalidInput
	}
	a, err := ParseOperand(parts[0])
	if err != nil {
		return 0, ErrInvalidInput
	}
	op, ok := ParseOperator(parts[1])
	if !ok {
		return 0, ErrInvalidInput
	}
	b, err := ParseOperand(parts[2])
	if err != nil {
		return 0, ErrInvalidInput
	}
	return Apply(a, b, op), nil
}
