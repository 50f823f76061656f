package logger

import (
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
)

// Logger writes structured JSON logs. Every record carries the service
// name, hostname, an action tag and the request ID it belongs to.
type Logger struct {
	service string
	log     *slog.Logger
}

// New creates a logger for the named service.
func New(service string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return &Logger{
		service: service,
		log: slog.New(handler).With(
			slog.String("service", service),
			slog.String("hostname", hostname),
		),
	}
}

// GenerateRequestID returns a fresh request correlation ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

func (l *Logger) Debug(action, requestID, message string, args ...any) {
	l.log.Debug(message, l.attrs(action, requestID, args)...)
}

func (l *Logger) Info(action, requestID, message string, args ...any) {
	l.log.Info(message, l.attrs(action, requestID, args)...)
}

func (l *Logger) Error(action, requestID, message string, err error, args ...any) {
	attrs := l.attrs(action, requestID, args)
	if err != nil {
		attrs = append(attrs, slog.Group("error",
			slog.String("msg", err.Error()),
			slog.String("stack", string(debug.Stack())),
		))
	}
	l.log.Error(message, attrs...)
}

func (l *Logger) attrs(action, requestID string, args []any) []any {
	out := make([]any, 0, len(args)+2)
	out = append(out, slog.String("action", action), slog.String("request_id", requestID))
	return append(out, args...)
}
