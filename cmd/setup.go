package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmath/internal/app"
	"github.com/abhisek/quickmath/internal/logging"
	"github.com/abhisek/quickmath/internal/problemgen"
	"github.com/abhisek/quickmath/internal/random"
	"github.com/abhisek/quickmath/internal/screens/quiz"
	"github.com/abhisek/quickmath/internal/settings"
)

// envLogFile names the variable consulted when --log-file is unset.
const envLogFile = settings.EnvPrefix + "LOG_FILE"

// settingFlags maps flag names to settings keys.
var settingFlags = map[string]string{
	"questions":  settings.KeyNumQuestions,
	"options":    settings.KeyNumOptions,
	"time":       settings.KeyTimeLimitMinutes,
	"difficulty": settings.KeyDifficulty,
}

// loadSettings resolves the effective settings. Only flags the user set
// override the lower layers; their raw text goes through the same checks
// as file and env values.
func loadSettings(cmd *cobra.Command) (settings.Settings, []*settings.InvalidSettingsError, error) {
	overrides := make(map[string]any)
	for name, key := range settingFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	path, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	s, invalid, err := settings.Load(settings.LoadOptions{
		Path:      path,
		EnvFile:   envFile,
		Overrides: overrides,
	})
	if err != nil {
		return settings.Settings{}, nil, fmt.Errorf("load settings: %w", err)
	}
	return s, invalid, nil
}

// openLogger returns the logger for a command. With no log file it writes
// text to fallback at warn and above, or discards when fallback is nil.
func openLogger(cmd *cobra.Command, fallback io.Writer) (*slog.Logger, func() error, error) {
	levelText, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelText)
	if err != nil {
		return nil, nil, err
	}

	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv(envLogFile)
	}
	if path == "" && fallback != nil {
		return logging.New(fallback, max(level, slog.LevelWarn), logging.FormatText), func() error { return nil }, nil
	}
	return logging.Open(path, level)
}

// quizDeps builds the question pipeline from the --seed flag.
func quizDeps(cmd *cobra.Command, s settings.Settings, log *slog.Logger) (quiz.Deps, error) {
	seed, _ := cmd.Flags().GetUint64("seed")
	src := random.New(seed)

	cfg := problemgen.DefaultConfig()
	gen, err := problemgen.New(src, cfg)
	if err != nil {
		return quiz.Deps{}, fmt.Errorf("question generator: %w", err)
	}

	log.Debug("question source ready", "seed", src.Seed())
	return quiz.Deps{
		Settings:    s,
		Generator:   gen,
		Distractors: problemgen.NewOptionGenerator(src),
		Validators:  problemgen.DefaultValidators(cfg),
		Logger:      log,
	}, nil
}

func logSubstitutions(log *slog.Logger, invalid []*settings.InvalidSettingsError) {
	for _, e := range invalid {
		log.Warn("settings substituted",
			"field", e.Field,
			"value", e.Value,
			"default", e.Default,
			"reason", e.Reason,
		)
	}
}

// runTUI launches the terminal UI, at the home screen or straight into
// a quiz.
func runTUI(cmd *cobra.Command, startQuiz bool) error {
	s, invalid, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(cmd, nil)
	if err != nil {
		return err
	}
	defer closeLog()
	logSubstitutions(log, invalid)

	deps, err := quizDeps(cmd, s, log)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Quiz:      deps,
		StartQuiz: startQuiz,
		Logger:    log,
	})
}
