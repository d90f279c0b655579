package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Debug(msg string)
	Named(loggerName string) Logger
}

type AdminLogger struct {
	logger  *slog.Logger
	handler slog.Handler
}

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelDebug)
}

// SetLevel changes the level of every logger created by this package.
func SetLevel(name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return err
	}
	level.Set(l)
	return nil
}

func New(loggerName string) Logger {
	return NewWithWriter(loggerName, os.Stdout)
}

func NewWithWriter(loggerName string, w io.Writer) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	return named(handler, loggerName)
}

func named(handler slog.Handler, loggerName string) AdminLogger {
	attrs := []slog.Attr{slog.String("logger", loggerName)}
	h := handler.WithAttrs(attrs)
	return AdminLogger{logger: slog.New(h), handler: handler}
}

func (al AdminLogger) Named(loggerName string) Logger {
	return named(al.handler, loggerName)
}

func (al AdminLogger) Info(msg string) {
	al.logger.Info(msg)
}

func (al AdminLogger) Error(msg string, err error) {
	if err != nil {
		e := slog.String("error", err.Error())
		al.logger.Error(msg, e)
		return
	}
	al.logger.Error(msg)
}

func (al AdminLogger) Debug(msg string) {
	al.logger.Debug(msg)
}
