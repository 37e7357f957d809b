package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Logger emits structured JSON log lines with a fixed envelope: service
// name, hostname, machine-readable action, request id.
type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// New creates a logger for the given service mode.
func New(service string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// GenerateRequestID returns a fresh id correlating all log lines of one
// request or startup sequence.
func GenerateRequestID() string {
	return uuid.NewString()
}

func (l *Logger) log(level slog.Level, action, requestID, message string, attrs []slog.Attr) {
	base := []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
	}
	l.handler.LogAttrs(context.Background(), level, message, append(base, attrs...)...)
}

func fieldAttrs(fields map[string]interface{}) []slog.Attr {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

func (l *Logger) Info(action, requestID, message string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, action, requestID, message, fieldAttrs(fields))
}

func (l *Logger) Debug(action, requestID, message string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, action, requestID, message, fieldAttrs(fields))
}

func (l *Logger) Error(action, requestID, message string, err error, fields map[string]interface{}) {
	attrs := fieldAttrs(fields)
	if err != nil {
		attrs = append(attrs, slog.Group("error",
			slog.String("msg", err.Error()),
			slog.String("stack", string(debug.Stack())),
		))
	}
	l.log(slog.LevelError, action, requestID, message, attrs)
}
