package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load fills the configuration struct from environment variables based on
// `env` field tags. On the first call the default .env file is loaded into
// the environment if present; a missing file is not an error.
//
// Example:
//
//	type Config struct {
//		Locale   string `env:"CHRONO_LOCALE" envDefault:"en"`
//		DSTLabel string `env:"CHRONO_DST_LABEL" envDefault:"(DST)"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg)
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads environment variables from specific files into the process
// environment. Variables already set in the environment keep their values.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
