package problemgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickmath/internal/random"
)

func newTestGenerator(t *testing.T, src random.Source) *ArithmeticGenerator {
	t.Helper()
	gen, err := New(src, DefaultConfig())
	require.NoError(t, err)
	return gen
}

func TestGenerate_Properties(t *testing.T) {
	gen := newTestGenerator(t, random.New(1234))
	validators := DefaultValidators(DefaultConfig())
	counts := make(map[Operator]int)

	for i := 0; i < 5000; i++ {
		q := gen.Generate()
		counts[q.Op]++

		if got := q.Op.Apply(q.A, q.B); got != q.Answer {
			t.Fatalf("%s: recomputed %d, stored %d", q.Text(), got, q.Answer)
		}
		switch q.Op {
		case OpSub:
			if q.A < q.B {
				t.Fatalf("%s: subtraction operands not ordered", q.Text())
			}
		case OpDiv:
			if q.A%q.B != 0 {
				t.Fatalf("%s: division not exact", q.Text())
			}
		case OpMul:
			if q.A*q.B > 50 {
				t.Fatalf("%s: product above 50", q.Text())
			}
		}
		if q.Answer <= 0 {
			t.Fatalf("%s: answer %d not positive", q.Text(), q.Answer)
		}
		if err := Validate(q, validators); err != nil {
			t.Fatalf("%s: %v", q.Text(), err)
		}
	}

	for _, op := range AllOperators {
		if counts[op] < 1000 {
			t.Errorf("operator %s drawn %d times, expected roughly uniform", op, counts[op])
		}
	}
}

func TestGenerate_DivisionFromDivisorAndQuotient(t *testing.T) {
	// Operator index 3 = ÷, divisor 2+2 = 4, quotient 2+3 = 5.
	gen := newTestGenerator(t, random.NewScripted(3, 2, 3))

	q := gen.Generate()

	if q.Op != OpDiv {
		t.Fatalf("Op = %s, want div", q.Op)
	}
	if q.A != 20 || q.B != 4 {
		t.Errorf("operands = %d, %d, want 20, 4", q.A, q.B)
	}
	if q.Answer != 5 {
		t.Errorf("Answer = %d, want 5", q.Answer)
	}
	if q.Text() != "20 ÷ 4" {
		t.Errorf("Text = %q, want %q", q.Text(), "20 ÷ 4")
	}
}

func TestGenerate_MultiplicationResamples(t *testing.T) {
	// First pair 20×20 is rejected, second pair 2×7 is kept.
	src := random.NewScripted(2, 18, 18, 0, 5)
	gen := newTestGenerator(t, src)

	q := gen.Generate()

	if q.Op != OpMul || q.A != 2 || q.B != 7 || q.Answer != 14 {
		t.Errorf("got %s = %d, want 2 × 7 = 14", q.Text(), q.Answer)
	}
	if src.Consumed() != 5 {
		t.Errorf("Consumed = %d, want 5", src.Consumed())
	}
}

func TestGenerate_SubtractionSwapsOperands(t *testing.T) {
	gen := newTestGenerator(t, random.NewScripted(1, 3, 10))

	q := gen.Generate()

	if q.A != 12 || q.B != 5 || q.Answer != 7 {
		t.Errorf("got %s = %d, want 12 − 5 = 7", q.Text(), q.Answer)
	}
}

func TestGenerate_SubtractionRejectsEqualOperands(t *testing.T) {
	gen := newTestGenerator(t, random.NewScripted(1, 4, 4, 4, 0))

	q := gen.Generate()

	if q.A != 6 || q.B != 2 || q.Answer != 4 {
		t.Errorf("got %s = %d, want 6 − 2 = 4", q.Text(), q.Answer)
	}
}

func TestGenerate_AdditionUsesOperandsAsDrawn(t *testing.T) {
	gen := newTestGenerator(t, random.NewScripted(0, 5, 1))

	q := gen.Generate()

	if q.Text() != "7 + 3" || q.Answer != 10 {
		t.Errorf("got %s = %d, want 7 + 3 = 10", q.Text(), q.Answer)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"no operators", func(c *Config) { c.Operators = nil }, true},
		{"unknown operator", func(c *Config) { c.Operators = []Operator{Operator(9)} }, true},
		{"inverted operands", func(c *Config) { c.OperandMin, c.OperandMax = 10, 2 }, true},
		{"zero operand", func(c *Config) { c.OperandMin = 0 }, true},
		{"product cap unreachable", func(c *Config) { c.OperandMin = 8 }, true},
		{"product cap ignored without mul", func(c *Config) {
			c.OperandMin = 8
			c.Operators = []Operator{OpAdd, OpDiv}
		}, false},
		{"single operand with sub", func(c *Config) { c.OperandMin, c.OperandMax = 5, 5 }, true},
		{"bad divisor", func(c *Config) { c.DivisorMin = 0 }, true},
		{"bad quotient", func(c *Config) { c.QuotientMin, c.QuotientMax = 4, 3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Operators = nil
	_, err := New(random.New(1), cfg)
	require.Error(t, err)
}

func TestOperator_ApplyAndSymbols(t *testing.T) {
	tests := []struct {
		op     Operator
		a, b   int
		want   int
		symbol string
	}{
		{OpAdd, 7, 3, 10, "+"},
		{OpSub, 7, 3, 4, "−"},
		{OpMul, 7, 3, 21, "×"},
		{OpDiv, 7, 3, 2, "÷"}, // truncating
		{OpDiv, 7, 0, 0, "÷"},
	}
	for _, tt := range tests {
		if got := tt.op.Apply(tt.a, tt.b); got != tt.want {
			t.Errorf("%s.Apply(%d, %d) = %d, want %d", tt.op, tt.a, tt.b, got, tt.want)
		}
		if tt.op.Symbol() != tt.symbol {
			t.Errorf("%s.Symbol() = %q, want %q", tt.op, tt.op.Symbol(), tt.symbol)
		}
	}
}
