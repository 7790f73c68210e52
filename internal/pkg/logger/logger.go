package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// ParseLevel maps LOG_LEVEL through logrus, defaulting to info.
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// DefaultLogger adapts a logrus entry to Logger, so services keep their
// printf-style calls while fields and levels come from logrus.
type DefaultLogger struct {
	entry *logrus.Entry
}

func NewDefaultLogger(level logrus.Level) *DefaultLogger {
	return New(level, os.Stderr)
}

func New(level logrus.Level, out io.Writer) *DefaultLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &DefaultLogger{entry: logrus.NewEntry(l)}
}

// WithFields returns a logger that adds fields to every line.
func (l *DefaultLogger) WithFields(fields logrus.Fields) *DefaultLogger {
	return &DefaultLogger{entry: l.entry.WithFields(fields)}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

// Output writes to stderr and, when path is set, also to a rotating file.
func Output(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	return io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		LocalTime:  true,
	})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}

// Nop discards everything; handy in tests.
func Nop() Logger { return nopLogger{} }
