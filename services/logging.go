package services

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogging sets up logrus for the services and the zerolog global
// level for the runtime. When logFile is set, output also goes to a rotated
// file.
func ConfigureLogging(level, logFile string) error {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return err
		}
		lvl = parsed
	}

	log.SetLevel(lvl)
	log.SetFormatter(&log.JSONFormatter{})

	var out io.Writer = os.Stdout
	if logFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		})
	}
	log.SetOutput(out)

	zerolog.SetGlobalLevel(zerologLevel(lvl))
	return nil
}

func zerologLevel(lvl log.Level) zerolog.Level {
	switch lvl {
	case log.TraceLevel:
		return zerolog.TraceLevel
	case log.DebugLevel:
		return zerolog.DebugLevel
	case log.WarnLevel:
		return zerolog.WarnLevel
	case log.ErrorLevel:
		return zerolog.ErrorLevel
	case log.FatalLevel, log.PanicLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
