package problemgen

import (
	"errors"
	"testing"
)

func TestParseAnswer_Errors(t *testing.T) {
	for _, input := range []string{"", "   ", "seven", "1/2", "3 4"} {
		_, err := ParseAnswer(input)
		if err == nil {
			t.Errorf("ParseAnswer(%q) returned no error", input)
			continue
		}
		if !errors.Is(err, ErrNotANumber) {
			t.Errorf("ParseAnswer(%q) error %v does not wrap ErrNotANumber", input, err)
		}
	}
}

func TestParseAnswer_Negative(t *testing.T) {
	n, err := ParseAnswer("-3")
	if err != nil {
		t.Fatalf("ParseAnswer(-3): %v", err)
	}
	if n != -3 {
		t.Errorf("ParseAnswer(-3) = %d", n)
	}
}

func TestParseAnswer_Normalizes(t *testing.T) {
	for _, input := range []string{"42", " 42 ", "042", "+42", "\t42\n"} {
		n, err := ParseAnswer(input)
		if err != nil {
			t.Errorf("ParseAnswer(%q): %v", input, err)
			continue
		}
		if n != 42 {
			t.Errorf("ParseAnswer(%q) = %d, want 42", input, n)
		}
	}
}
