package config

import (
	"github.com/rs/zerolog"

	"github.com/ecomood/ecomood/internal/logging"
)

// ToLoggingConfig converts the logging section to a logging.Config.
// A configured file selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging section.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

func parseLevel(level string) (zerolog.Level, error) {
	return zerolog.ParseLevel(level)
}
