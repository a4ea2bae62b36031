package problemgen

import "testing"

func TestMathCheck_AllOperators(t *testing.T) {
	v := &MathCheckValidator{}

	tests := []struct {
		q     Question
		wrong int
	}{
		{Question{A: 7, B: 3, Op: OpAdd, Answer: 10}, 11},
		{Question{A: 12, B: 5, Op: OpSub, Answer: 7}, 17},
		{Question{A: 6, B: 8, Op: OpMul, Answer: 48}, 14},
		{Question{A: 20, B: 4, Op: OpDiv, Answer: 5}, 80},
	}

	for _, tt := range tests {
		if err := v.Validate(tt.q); err != nil {
			t.Errorf("%s = %d should pass: %v", tt.q.Text(), tt.q.Answer, err)
		}
		bad := tt.q
		bad.Answer = tt.wrong
		if err := v.Validate(bad); err == nil {
			t.Errorf("%s = %d should fail", bad.Text(), bad.Answer)
		}
	}
}

func TestMathCheck_UnknownOperator(t *testing.T) {
	v := &MathCheckValidator{}
	err := v.Validate(Question{A: 2, B: 3, Op: Operator(9), Answer: 5})
	if err == nil {
		t.Fatal("expected error for unrenderable operator")
	}
	if err.Validator != "math-check" {
		t.Errorf("validator = %q, want math-check", err.Validator)
	}
}

func TestComputeAnswer(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"7 + 3", 10, false},
		{"12 - 5", 7, false},
		{"12 − 5", 7, false},
		{"6*8", 48, false},
		{"6 × 8", 48, false},
		{"20 / 4", 5, false},
		{"20 ÷ 4", 5, false},
		{"  9 + 1  ", 10, false},
		{"5 ÷ 0", 0, true},
		{"what is 2 + 2?", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := computeAnswer(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("computeAnswer(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("computeAnswer(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
