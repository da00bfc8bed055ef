// Package config loads typed configuration from environment variables.
//
// Configuration is declared as a struct with `env` tags and filled by Load,
// which also picks up a .env file on first use so local development does not
// require exporting variables by hand:
//
//	type Config struct {
//		Locale    string `env:"CHRONO_LOCALE" envDefault:"en"`
//		DSTLabel  string `env:"CHRONO_DST_LABEL" envDefault:"(DST)"`
//		LogFormat string `env:"CHRONO_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Precedence is conventional: real environment variables win over .env file
// entries, which win over envDefault tag values.
package config
