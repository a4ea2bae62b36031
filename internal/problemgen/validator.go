package problemgen

import "fmt"

// Validator checks a generated question before it is shown.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "math-check".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard chain for questions built with cfg.
func DefaultValidators(cfg Config) []Validator {
	return []Validator{
		&StructuralValidator{ProductMax: cfg.ProductMax},
		&MathCheckValidator{},
	}
}

// Validate runs validators in order and returns the first failure.
func Validate(q Question, validators []Validator) error {
	for _, v := range validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

// ValidateOptions checks that options is a well-formed OptionSet of size
// count for q.
func ValidateOptions(q Question, options OptionSet, count int) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: "options", Message: fmt.Sprintf(format, args...)}
	}
	if len(options) != count {
		return fail("got %d options, want %d", len(options), count)
	}
	seen := make(map[int]bool, len(options))
	found := 0
	for _, o := range options {
		if o <= 0 {
			return fail("option %d is not positive", o)
		}
		if seen[o] {
			return fail("option %d is duplicated", o)
		}
		seen[o] = true
		if o == q.Answer {
			found++
		}
	}
	if found != 1 {
		return fail("answer %d appears %d times", q.Answer, found)
	}
	return nil
}
