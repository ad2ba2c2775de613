// Package log writes diagnostics to a daily file under the logs directory.
//
// Nothing is written unless logs.write is enabled, so every helper here is
// safe to call from library code.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/key"
	"github.com/laradl/laradl/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers do not need to import logrus directly.
type Fields = logrus.Fields

// logger is the destination of every helper. It discards until Setup enables it.
var logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup opens today's log file and applies the configured format and level.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = newDiscard()
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	file, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(file)
	l.SetLevel(level(viper.GetString(key.LogsLevel)))
	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		l.SetFormatter(&logrus.TextFormatter{})
	}

	logger = l
	return nil
}

// level parses a configured level name, falling back to info.
func level(name string) logrus.Level {
	parsed, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// WithFields returns an entry carrying structured context.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Tracef(format string, args ...any) {
	logger.Tracef(format, args...)
}
