package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Init sets the global level; anything unrecognized falls back to info.
func Init(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func L() *zerolog.Logger {
	return &base
}

func IsDebugEnabled() bool {
	return zerolog.GlobalLevel() <= zerolog.DebugLevel
}

func Debugf(format string, v ...any) {
	base.Debug().Msgf(format, v...)
}

func Infof(format string, v ...any) {
	base.Info().Msgf(format, v...)
}

func Warnf(format string, v ...any) {
	base.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...any) {
	base.Error().Msgf(format, v...)
}
