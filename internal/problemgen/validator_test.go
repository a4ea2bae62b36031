package problemgen

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultValidators_Chain(t *testing.T) {
	validators := DefaultValidators(DefaultConfig())
	names := []string{"structural", "math-check"}
	if len(validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(validators))
	}
	for i, v := range validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestValidate_ReturnsFirstFailure(t *testing.T) {
	validators := DefaultValidators(DefaultConfig())

	// Fails both structural (over cap) and math-check (wrong answer).
	q := Question{A: 9, B: 9, Op: OpMul, Answer: 80}
	err := Validate(q, validators)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("first failure from %q, want structural", verr.Validator)
	}

	if err := Validate(Question{A: 7, B: 3, Op: OpAdd, Answer: 10}, validators); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}
}

func TestValidateOptions(t *testing.T) {
	q := Question{A: 7, B: 3, Op: OpAdd, Answer: 10}

	tests := []struct {
		name    string
		options OptionSet
		count   int
		wantErr bool
	}{
		{"valid", OptionSet{8, 10, 13, 11}, 4, false},
		{"wrong size", OptionSet{8, 10, 13}, 4, true},
		{"duplicate", OptionSet{8, 10, 8, 11}, 4, true},
		{"non-positive", OptionSet{0, 10, 13, 11}, 4, true},
		{"missing answer", OptionSet{8, 9, 13, 11}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(q, tt.options, tt.count)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOptions() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err.Validator != "options" {
				t.Errorf("validator = %q, want options", err.Validator)
			}
		})
	}
}
