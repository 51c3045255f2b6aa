package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/alternativafozthiago/financas/config"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configura o logger global conforme o ambiente: saída de console em
// desenvolvimento, JSON estruturado nos demais ambientes.
func Init(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.App.Environment == "development" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		log = zerolog.New(output).Level(level).With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
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
