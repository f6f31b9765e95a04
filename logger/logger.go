package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tripindia/config"
)

// Init configures the global zerolog logger for the given environment.
// Production logs JSON at info level, everything else logs through a
// console writer at debug level.
func Init(env config.Environment) {
	InitWithWriter(env, os.Stdout)
}

func InitWithWriter(env config.Environment, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env.IsProduction() {
		log.Logger = zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
}

// Get returns the global logger, for components that keep their own copy.
func Get() zerolog.Logger {
	return log.Logger
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
