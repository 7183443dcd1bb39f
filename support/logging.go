package support

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func Logger(config Config) (*zerolog.Logger, error) {
	return LoggerTo(os.Stderr, config)
}

func LoggerTo(w io.Writer, config Config) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, InvalidConfig("COUNTER_LOG_LEVEL", err.Error())
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &logger, nil
}
