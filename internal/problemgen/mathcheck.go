package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the displayed
// question text, so what the learner sees and what is scored cannot drift.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q Question) *ValidationError {
	computed, err := computeAnswer(q.Text())
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
		}
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", computed, q.Answer),
		}
	}
	return nil
}

// exprRe matches "a <op> b" with ASCII or display operator symbols.
var exprRe = regexp.MustCompile(`^\s*(\d+)\s*([+\-*/×÷−])\s*(\d+)\s*$`)

// computeAnswer parses and evaluates a single binary integer expression.
func computeAnswer(text string) (int, error) {
	m := exprRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("no arithmetic expression in %q", text)
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	b, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, err
	}

	switch normalizeOp(m[2]) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unsupported operator %q", m[2])
}

// normalizeOp maps display symbols to ASCII operators.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	case "−":
		return "-"
	default:
		return op
	}
}
