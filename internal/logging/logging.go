package logging

import (
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// New builds the process logger: human-readable console output plus a
// size-rotated file, at the given level.
func New(level, filename string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.DateTime

	file := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
	}

	return zerolog.New(zerolog.MultiLevelWriter(console, file)).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}
