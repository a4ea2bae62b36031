package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ParseAnswer for input that is not an integer.
var ErrNotANumber = errors.New("answer is not a whole number")

// ParseAnswer parses a learner's typed answer.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - A leading '+' is accepted
//   - Leading zeros are ignored ("007" is 7)
func ParseAnswer(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("empty input: %w", ErrNotANumber)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrNotANumber)
	}
	return n, nil
}
