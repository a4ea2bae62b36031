package problemgen

import "fmt"

// Config controls operand ranges for the ArithmeticGenerator.
type Config struct {
	// Operators is the set questions are drawn from, uniformly.
	Operators []Operator

	// OperandMin and OperandMax bound both operands for +, − and ×.
	OperandMin int
	OperandMax int

	// ProductMax caps A*B for multiplication; pairs above it are resampled.
	ProductMax int

	// DivisorMin/DivisorMax and QuotientMin/QuotientMax bound division,
	// which is built as (divisor*quotient) ÷ divisor.
	DivisorMin  int
	DivisorMax  int
	QuotientMin int
	QuotientMax int
}

// DefaultConfig returns the standard ranges: operands 2..20, products up to
// 50, divisors and quotients 2..10.
func DefaultConfig() Config {
	return Config{
		Operators:   AllOperators,
		OperandMin:  2,
		OperandMax:  20,
		ProductMax:  50,
		DivisorMin:  2,
		DivisorMax:  10,
		QuotientMin: 2,
		QuotientMax: 10,
	}
}

// Validate checks that every sampling loop the generator runs can terminate
// and that every generated answer is positive.
func (c Config) Validate() error {
	if len(c.Operators) == 0 {
		return fmt.Errorf("no operators configured")
	}
	for _, op := range c.Operators {
		if op < OpAdd || op > OpDiv {
			return fmt.Errorf("unknown operator %d", int(op))
		}
	}
	if c.OperandMin < 1 || c.OperandMax < c.OperandMin {
		return fmt.Errorf("operand range [%d, %d] is invalid", c.OperandMin, c.OperandMax)
	}
	if c.uses(OpSub) && c.OperandMax == c.OperandMin {
		return fmt.Errorf("subtraction needs at least two distinct operands")
	}
	if c.uses(OpMul) && c.OperandMin*c.OperandMin > c.ProductMax {
		return fmt.Errorf("product cap %d is below the smallest product %d", c.ProductMax, c.OperandMin*c.OperandMin)
	}
	if c.DivisorMin < 1 || c.DivisorMax < c.DivisorMin {
		return fmt.Errorf("divisor range [%d, %d] is invalid", c.DivisorMin, c.DivisorMax)
	}
	if c.QuotientMin < 1 || c.QuotientMax < c.QuotientMin {
		return fmt.Errorf("quotient range [%d, %d] is invalid", c.QuotientMin, c.QuotientMax)
	}
	return nil
}

func (c Config) uses(op Operator) bool {
	for _, o := range c.Operators {
		if o == op {
			return true
		}
	}
	return false
}
