package problemgen

import (
	"fmt"

	"github.com/abhisek/quickmath/internal/random"
)

// Generator produces arithmetic questions.
type Generator interface {
	// Generate returns one question. It only consumes entropy; it has no
	// other side effects.
	Generate() Question
}

// ArithmeticGenerator draws random +, −, ×, ÷ questions within Config ranges.
type ArithmeticGenerator struct {
	src random.Source
	cfg Config
}

var _ Generator = (*ArithmeticGenerator)(nil)

// New creates an ArithmeticGenerator. It fails if cfg could make sampling
// loop forever.
func New(src random.Source, cfg Config) (*ArithmeticGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	return &ArithmeticGenerator{src: src, cfg: cfg}, nil
}

func (g *ArithmeticGenerator) Generate() Question {
	op := random.Pick(g.src, g.cfg.Operators)

	var a, b int
	switch op {
	case OpDiv:
		// Build from divisor and quotient so the result is always exact.
		divisor := random.IntRange(g.src, g.cfg.DivisorMin, g.cfg.DivisorMax)
		quotient := random.IntRange(g.src, g.cfg.QuotientMin, g.cfg.QuotientMax)
		a, b = divisor*quotient, divisor

	case OpMul:
		for {
			a, b = g.operands()
			if a*b <= g.cfg.ProductMax {
				break
			}
		}

	case OpSub:
		// Equal operands give 0; answers and options must stay positive.
		for {
			a, b = g.operands()
			if a != b {
				break
			}
		}
		if a < b {
			a, b = b, a
		}

	default:
		a, b = g.operands()
	}

	return Question{A: a, B: b, Op: op, Answer: op.Apply(a, b)}
}

func (g *ArithmeticGenerator) operands() (int, int) {
	a := random.IntRange(g.src, g.cfg.OperandMin, g.cfg.OperandMax)
	b := random.IntRange(g.src, g.cfg.OperandMin, g.cfg.OperandMax)
	return a, b
}
