// Package calc models a single reverse-Polish calculation: parsing the
// argument tokens into a request, evaluating it through the checked math
// core, and formatting the result line.
package calc

import (
	"fmt"
	"strconv"

	"github.com/pengelbrecht/rpn/internal/checked"
)

// Operation selects which checked arithmetic primitive a request runs.
// The value is the single-character token used on the command line.
type Operation string

const (
	OpAdd       Operation = "+"
	OpSubtract  Operation = "-"
	OpMultiply  Operation = "x"
	OpDivide    Operation = "/"
	OpPower     Operation = "^"
	OpFactorial Operation = "!"
)

// UsageError marks a malformed invocation (bad argument count, malformed
// token, unknown operator), as opposed to a math failure from evaluation.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// Request is one parsed calculation. B is unused when Op is OpFactorial.
type Request struct {
	A  int32
	B  int32
	Op Operation
}

// Parse recognizes the two accepted argument forms: "A B OP" for binary
// operations and "N !" for factorial. Any other shape is a UsageError.
func Parse(args []string) (Request, error) {
	switch len(args) {
	case 2:
		a, err := parseOperand(args[0])
		if err != nil {
			return Request{}, err
		}
		op, err := parseOperation(args[1])
		if err != nil {
			return Request{}, err
		}
		if op != OpFactorial {
			return Request{}, usageErrorf("unary form requires '!': N !")
		}
		return Request{A: a, Op: op}, nil

	case 3:
		a, err := parseOperand(args[0])
		if err != nil {
			return Request{}, err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return Request{}, err
		}
		op, err := parseOperation(args[2])
		if err != nil {
			return Request{}, err
		}
		if op == OpFactorial {
			return Request{}, usageErrorf("'!' must be used in unary form: N !")
		}
		return Request{A: a, B: b, Op: op}, nil

	default:
		return Request{}, usageErrorf("invalid number of arguments")
	}
}

func parseOperand(token string) (int32, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, usageErrorf("invalid integer: %s", token)
	}
	return int32(v), nil
}

func parseOperation(token string) (Operation, error) {
	if len(token) != 1 {
		return "", usageErrorf("operation must be a single character")
	}
	switch op := Operation(token); op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpFactorial:
		return op, nil
	default:
		return "", usageErrorf("unknown operation: %s", token)
	}
}

// Eval runs the request through the checked math core. Failures are the
// core's sentinel errors, unwrapped.
func (r Request) Eval() (int32, error) {
	switch r.Op {
	case OpAdd:
		return checked.Add(r.A, r.B)
	case OpSubtract:
		return checked.Sub(r.A, r.B)
	case OpMultiply:
		return checked.Mul(r.A, r.B)
	case OpDivide:
		return checked.Div(r.A, r.B)
	case OpPower:
		return checked.Pow(r.A, r.B)
	case OpFactorial:
		return checked.Fact(r.A)
	default:
		return 0, usageErrorf("unknown operation: %s", r.Op)
	}
}

// Format renders the result line printed on success. Factorial and power
// get their own phrasing; the remaining operators read infix.
func (r Request) Format(result int32) string {
	switch r.Op {
	case OpFactorial:
		return fmt.Sprintf("fact(%d) = %d", r.A, result)
	case OpPower:
		return fmt.Sprintf("%d^%d = %d", r.A, r.B, result)
	default:
		return fmt.Sprintf("%d %s %d = %d", r.A, r.Op, r.B, result)
	}
}
