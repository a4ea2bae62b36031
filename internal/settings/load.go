package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every settings environment variable.
const EnvPrefix = "QUICKMATH_"

// EnvConfig names the variable that points at a settings file.
const EnvConfig = EnvPrefix + "CONFIG"

// EnvVar returns the environment variable for a field key,
// e.g. QUICKMATH_NUM_OPTIONS.
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// LoadOptions selects the layers Load merges.
type LoadOptions struct {
	// Path is a YAML or JSON settings file. When empty, QUICKMATH_CONFIG is
	// consulted; when that is empty too, no file layer is used.
	Path string

	// EnvFile is a dotenv file. A missing file is ignored. Variables already
	// set in the process environment take precedence over it.
	EnvFile string

	// Overrides are values from explicitly set flags, keyed by field.
	Overrides map[string]any

	// LookupEnv reads the process environment. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load resolves settings from defaults, the settings file, the environment
// and overrides, later layers winning per field. Invalid field values are
// replaced by defaults and reported. The error is non-nil only when the
// settings file or env file cannot be used at all.
func Load(opts LoadOptions) (Settings, []*InvalidSettingsError, error) {
	lookup, err := envLookup(opts)
	if err != nil {
		return Settings{}, nil, err
	}

	values := make(map[string]any)

	path := opts.Path
	if path == "" {
		path, _ = lookup(EnvConfig)
	}
	if path != "" {
		doc, err := readFile(path)
		if err != nil {
			return Settings{}, nil, err
		}
		for k, v := range doc {
			values[k] = v
		}
	}

	for _, key := range Keys {
		if v, ok := lookup(EnvVar(key)); ok && strings.TrimSpace(v) != "" {
			values[key] = v
		}
	}

	for k, v := range opts.Overrides {
		values[k] = v
	}

	s, invalid := resolve(values)
	return s, invalid, nil
}

// envLookup layers the process environment over the optional dotenv file.
func envLookup(opts LoadOptions) (func(string) (string, bool), error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if opts.EnvFile == "" {
		return lookup, nil
	}

	dotenv, err := godotenv.Read(opts.EnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return lookup, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", opts.EnvFile, err)
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// readFile parses a settings file. Files ending in .json are decoded as
// JSON, everything else as YAML.
func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var doc map[string]any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	if err := checkDocument(doc); err != nil {
		return nil, fmt.Errorf("settings file %s: %s", path, err)
	}
	return doc, nil
}

// MarshalYAML renders the settings in settings-file form.
func (s Settings) MarshalYAML() (any, error) {
	return struct {
		NumQuestions     int     `yaml:"num_questions"`
		NumOptions       int     `yaml:"num_options"`
		TimeLimitMinutes float64 `yaml:"time_limit_minutes"`
		Difficulty       string  `yaml:"difficulty"`
	}{s.NumQuestions, s.NumOptions, s.TimeLimitMinutes, s.Difficulty.String()}, nil
}
