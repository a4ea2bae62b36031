package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsOnly(t *testing.T) {
	s, invalid, err := Load(LoadOptions{LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "quiz.yaml", "num_questions: 5\nnum_options: 3\ntime_limit_minutes: 0.5\ndifficulty: Hard\n")

	s, invalid, err := Load(LoadOptions{Path: path, LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, Settings{NumQuestions: 5, NumOptions: 3, TimeLimitMinutes: 0.5, Difficulty: DifficultyHard}, s)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "quiz.json", `{"num_questions": 20, "difficulty": "easy"}`)

	s, invalid, err := Load(LoadOptions{Path: path, LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, 20, s.NumQuestions)
	assert.Equal(t, DifficultyEasy, s.Difficulty)
	assert.Equal(t, 4, s.NumOptions)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "quiz.yaml", "num_questions: 5\nnum_options: 3\ntime_limit_minutes: 2\n")
	env := envMap(map[string]string{
		"QUICKMATH_NUM_OPTIONS":        "6",
		"QUICKMATH_TIME_LIMIT_MINUTES": "3",
	})

	s, invalid, err := Load(LoadOptions{
		Path:      path,
		LookupEnv: env,
		Overrides: map[string]any{KeyTimeLimitMinutes: 4.0},
	})
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, 5, s.NumQuestions, "file")
	assert.Equal(t, 6, s.NumOptions, "env over file")
	assert.Equal(t, 4.0, s.TimeLimitMinutes, "flag over env")
	assert.Equal(t, DifficultyMedium, s.Difficulty, "default")
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	path := writeFile(t, "quiz.yaml", "num_questions: many\nnum_options: 12\n")
	env := envMap(map[string]string{"QUICKMATH_DIFFICULTY": "expert"})

	s, invalid, err := Load(LoadOptions{Path: path, LookupEnv: env})
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)

	fields := make([]string, 0, len(invalid))
	for _, e := range invalid {
		fields = append(fields, e.Field)
		assert.False(t, e.Missing)
	}
	assert.Equal(t, []string{KeyNumQuestions, KeyNumOptions, KeyDifficulty}, fields)

	for _, huge := range []any{"1e20", "9223372036854775808", 1e300, MaxQuestions + 1} {
		s, invalid, err := Load(LoadOptions{
			LookupEnv: noEnv,
			Overrides: map[string]any{KeyNumQuestions: huge},
		})
		require.NoError(t, err)
		assert.Equal(t, Defaults().NumQuestions, s.NumQuestions, "num_questions=%v", huge)
		require.Len(t, invalid, 1, "num_questions=%v", huge)
		assert.Equal(t, KeyNumQuestions, invalid[0].Field)
	}

	s, invalid, err = Load(LoadOptions{
		LookupEnv: noEnv,
		Overrides: map[string]any{KeyNumQuestions: MaxQuestions},
	})
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, MaxQuestions, s.NumQuestions)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeFile(t, "quiz.yml", "num_questions: 7\n")
	s, _, err := Load(LoadOptions{LookupEnv: envMap(map[string]string{EnvConfig: path})})
	require.NoError(t, err)
	assert.Equal(t, 7, s.NumQuestions)
}

func TestLoad_DotenvLayer(t *testing.T) {
	envFile := writeFile(t, ".env", "QUICKMATH_NUM_QUESTIONS=12\nQUICKMATH_NUM_OPTIONS=5\n")
	env := envMap(map[string]string{"QUICKMATH_NUM_OPTIONS": "3"})

	s, invalid, err := Load(LoadOptions{EnvFile: envFile, LookupEnv: env})
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, 12, s.NumQuestions)
	assert.Equal(t, 3, s.NumOptions, "process env wins over .env")
}

func TestLoad_MissingDotenvIgnored(t *testing.T) {
	_, _, err := Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), ".env"), LookupEnv: noEnv})
	require.NoError(t, err)
}

func TestLoad_FileErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"unknown key", func(t *testing.T) string { return writeFile(t, "quiz.yaml", "questions: 5\n") }},
		{"not an object", func(t *testing.T) string { return writeFile(t, "quiz.yaml", "- 1\n- 2\n") }},
		{"bad json", func(t *testing.T) string { return writeFile(t, "quiz.json", "{") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(LoadOptions{Path: tt.path(t), LookupEnv: noEnv})
			assert.Error(t, err)
		})
	}
}

func TestSettings_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(Defaults())
	require.NoError(t, err)
	assert.Equal(t, "num_questions: 10\nnum_options: 4\ntime_limit_minutes: 1\ndifficulty: medium\n", string(out))
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "QUICKMATH_TIME_LIMIT_MINUTES", EnvVar(KeyTimeLimitMinutes))
}
