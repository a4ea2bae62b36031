package problemgen

import (
	"fmt"
	"slices"
)

// Operator is one of the four arithmetic operations a question can use.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// AllOperators lists every supported operator in display order.
var AllOperators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// Symbol returns the operator as shown to the learner.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Apply computes a op b. Division truncates toward zero and returns 0 for
// a zero divisor; generated questions never divide by zero.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

// Question is a generated arithmetic problem.
type Question struct {
	// A and B are the operands exactly as displayed. For subtraction A >= B;
	// for division A is a multiple of B.
	A, B int

	// Op is the arithmetic operation.
	Op Operator

	// Answer is Op.Apply(A, B).
	Answer int
}

// Text renders the question for display, e.g. "7 + 3".
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d", q.A, q.Op.Symbol(), q.B)
}

// Check reports whether picked is the correct answer.
func (q Question) Check(picked int) bool {
	return picked == q.Answer
}

// OptionSet is the ordered list of choices shown for one question.
// It contains the correct answer exactly once and no duplicates.
type OptionSet []int

// Contains reports whether v is one of the options.
func (o OptionSet) Contains(v int) bool {
	return slices.Contains(o, v)
}

// Index returns the position of v, or -1 if absent.
func (o OptionSet) Index(v int) int {
	return slices.Index(o, v)
}
