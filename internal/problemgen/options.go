package problemgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/quickmath/internal/random"
)

// DefaultMaxAttempts bounds candidate draws per OptionSet.
const DefaultMaxAttempts = 1000

// DefaultOffsets are the distances distractors are placed from the answer.
var DefaultOffsets = []int{1, 2, 3, 4, 5}

// ErrGenerationExhausted is matched by GenerationExhaustedError via errors.Is.
var ErrGenerationExhausted = errors.New("option generation exhausted")

// GenerationExhaustedError reports that the requested number of unique
// options could not be reached within the attempt budget.
type GenerationExhaustedError struct {
	Correct  int // Answer the options were built around
	Count    int // Requested option count
	Reached  int // Unique options found before giving up
	Attempts int // Candidate draws made
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("%s: %d of %d options for answer %d after %d attempts",
		ErrGenerationExhausted, e.Reached, e.Count, e.Correct, e.Attempts)
}

func (e *GenerationExhaustedError) Is(target error) bool {
	return target == ErrGenerationExhausted
}

// OptionGenerator builds multiple-choice option sets with plausible
// distractors near the correct answer.
type OptionGenerator struct {
	src         random.Source
	offsets     []int
	maxAttempts int
}

// NewOptionGenerator uses DefaultOffsets and DefaultMaxAttempts.
func NewOptionGenerator(src random.Source) *OptionGenerator {
	return &OptionGenerator{
		src:         src,
		offsets:     DefaultOffsets,
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithMaxAttempts returns a copy using a different attempt budget.
func (g *OptionGenerator) WithMaxAttempts(n int) *OptionGenerator {
	c := *g
	if n > 0 {
		c.maxAttempts = n
	}
	return &c
}

// Generate returns count unique positive options including correct, in
// random order. correct must be positive and count at least 2.
func (g *OptionGenerator) Generate(correct, count int) (OptionSet, error) {
	if count < 2 {
		return nil, fmt.Errorf("option count %d: need at least 2", count)
	}
	if correct <= 0 {
		return nil, fmt.Errorf("answer %d: options must be positive", correct)
	}

	seen := map[int]bool{correct: true}
	options := OptionSet{correct}

	attempts := 0
	for len(options) < count {
		if attempts >= g.maxAttempts {
			return nil, &GenerationExhaustedError{
				Correct:  correct,
				Count:    count,
				Reached:  len(options),
				Attempts: attempts,
			}
		}
		attempts++

		offset := random.Pick(g.src, g.offsets)
		if g.src.IntN(2) == 0 {
			offset = -offset
		}
		candidate := correct + offset
		if candidate <= 0 {
			candidate = -candidate + 1
		}
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		options = append(options, candidate)
	}

	g.src.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}
