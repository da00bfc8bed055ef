package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronokit/chronokit/pkg/calendar"
	"github.com/chronokit/chronokit/pkg/config"
	"github.com/chronokit/chronokit/pkg/dateformat"
	"github.com/chronokit/chronokit/pkg/locale"
	"github.com/chronokit/chronokit/pkg/logger"
	"github.com/chronokit/chronokit/pkg/timezone"
)

type appConfig struct {
	Locale      string `env:"CHRONO_LOCALE" envDefault:"en"`
	LocalesFile string `env:"CHRONO_LOCALES_FILE"`
	FormatsFile string `env:"CHRONO_FORMATS_FILE"`
	DSTLabel    string `env:"CHRONO_DST_LABEL" envDefault:"(DST)"`
	LogLevel    string `env:"CHRONO_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"CHRONO_LOG_FORMAT" envDefault:"text"`
}

var (
	cfg      appConfig
	log      *slog.Logger
	cal      *calendar.Calendar
	formats  dateformat.Table
	resolver *timezone.Resolver
)

var rootCmd = &cobra.Command{
	Use:           "chrono",
	Short:         "Calendar and timezone queries from the command line",
	SilenceUsage:  true,
	SilenceErrors: false,

	PersistentPreRunE: setup,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.Load(&cfg); err != nil {
		return err
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return fmt.Errorf("invalid CHRONO_LOG_FORMAT %q", cfg.LogFormat)
	}
	log = logger.New(
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithFormat(format),
	)

	provider := locale.Default()
	if cfg.LocalesFile != "" {
		data, err := os.ReadFile(cfg.LocalesFile)
		if err != nil {
			return fmt.Errorf("failed to read locales file: %w", err)
		}
		if provider, err = locale.NewProviderFromYAML(data); err != nil {
			return err
		}
		log.Debug("Loaded locale tables", "file", cfg.LocalesFile, "languages", provider.Languages())
	}
	cal = calendar.New(provider.Names(cfg.Locale))

	formats = dateformat.Table{}
	if cfg.FormatsFile != "" {
		data, err := os.ReadFile(cfg.FormatsFile)
		if err != nil {
			return fmt.Errorf("failed to read formats file: %w", err)
		}
		if formats, err = dateformat.ParseYAML(data); err != nil {
			return err
		}
	}

	resolver = timezone.NewResolver(timezone.NewBuiltinSource())
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
