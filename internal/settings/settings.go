// Package settings holds the per-session quiz configuration, its defaults,
// and the layered loader that resolves it from files, env and flags.
package settings

import (
	"fmt"
	"math"
	"strings"
)

// MaxOptions is the largest supported option count. Larger lists do not
// fit the quiz screen.
const MaxOptions = 9

// MaxQuestions caps the session length so counts always fit an int.
const MaxQuestions = 10000

// Field keys, shared by the settings file, the schema and error reports.
const (
	KeyNumQuestions     = "num_questions"
	KeyNumOptions       = "num_options"
	KeyTimeLimitMinutes = "time_limit_minutes"
	KeyDifficulty       = "difficulty"
)

// Keys lists every settings field in display order.
var Keys = []string{KeyNumQuestions, KeyNumOptions, KeyTimeLimitMinutes, KeyDifficulty}

// Difficulty is carried through a session and shown to the player.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return ""
	}
}

// Label returns the capitalized display name.
func (d Difficulty) Label() string {
	s := d.String()
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDifficulty accepts "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Settings configures one quiz session. A Settings value is immutable once
// a session has started with it.
type Settings struct {
	NumQuestions     int
	NumOptions       int
	TimeLimitMinutes float64
	Difficulty       Difficulty
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		NumQuestions:     10,
		NumOptions:       4,
		TimeLimitMinutes: 1,
		Difficulty:       DifficultyMedium,
	}
}

// TimeLimitSeconds returns the countdown length, rounded to whole seconds
// and never below one.
func (s Settings) TimeLimitSeconds() int {
	secs := int(math.Round(s.TimeLimitMinutes * 60))
	if secs < 1 {
		return 1
	}
	return secs
}

// Values returns the settings keyed by field name, in their file form.
func (s Settings) Values() map[string]any {
	return map[string]any{
		KeyNumQuestions:     s.NumQuestions,
		KeyNumOptions:       s.NumOptions,
		KeyTimeLimitMinutes: s.TimeLimitMinutes,
		KeyDifficulty:       s.Difficulty.String(),
	}
}

// InvalidSettingsError reports a field that was missing or rejected and has
// been replaced by its default.
type InvalidSettingsError struct {
	Field   string // Field key, e.g. "num_options"
	Value   any    // Rejected value; nil when Missing
	Default any    // Value substituted in its place
	Reason  string
	Missing bool
}

func (e *InvalidSettingsError) Error() string {
	if e.Missing {
		return fmt.Sprintf("settings: %s missing, using default %v", e.Field, e.Default)
	}
	return fmt.Sprintf("settings: %s=%v invalid (%s), using default %v", e.Field, e.Value, e.Reason, e.Default)
}

// Normalize checks every field of s and substitutes the default for each
// zero or invalid one. The returned errors describe each substitution.
func Normalize(s Settings) (Settings, []*InvalidSettingsError) {
	values := s.Values()
	var missing []*InvalidSettingsError

	zero := map[string]bool{
		KeyNumQuestions:     s.NumQuestions == 0,
		KeyNumOptions:       s.NumOptions == 0,
		KeyTimeLimitMinutes: s.TimeLimitMinutes == 0,
		KeyDifficulty:       s.Difficulty == 0,
	}
	defaults := Defaults().Values()
	for _, key := range Keys {
		if zero[key] {
			delete(values, key)
			missing = append(missing, &InvalidSettingsError{
				Field:   key,
				Default: defaults[key],
				Missing: true,
			})
		}
	}

	out, invalid := resolve(values)
	return out, append(missing, invalid...)
}

// resolve builds Settings from raw field values. Absent keys take their
// default silently; present keys that fail validation take their default
// and are reported.
func resolve(values map[string]any) (Settings, []*InvalidSettingsError) {
	out := Defaults()
	defaults := out.Values()
	var errs []*InvalidSettingsError

	for _, key := range Keys {
		raw, ok := values[key]
		if !ok {
			continue
		}
		v, err := checkField(key, raw)
		if err != nil {
			errs = append(errs, &InvalidSettingsError{
				Field:   key,
				Value:   raw,
				Default: defaults[key],
				Reason:  err.Error(),
			})
			continue
		}
		apply(&out, key, v)
	}
	return out, errs
}

func apply(s *Settings, key string, v fieldValue) {
	switch key {
	case KeyNumQuestions:
		s.NumQuestions = int(v.number)
	case KeyNumOptions:
		s.NumOptions = int(v.number)
	case KeyTimeLimitMinutes:
		s.TimeLimitMinutes = v.number
	case KeyDifficulty:
		// Already constrained to the enum by the schema.
		s.Difficulty, _ = ParseDifficulty(v.text)
	}
}
