// Package logger is a thin layer over the logrus standard logger. Every entry
// goes out as JSON; request-scoped entries carry the request id.
package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request id set by the RequestID middleware
const RequestIDKey = "request_id"

// Logger keeps chained calls typed as *Logger rather than *logrus.Entry
type Logger struct {
	*logrus.Entry
}

// Setup switches the standard logger to JSON output at level. Unknown levels fall back to info.
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func root() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithContext tags entries with the request id found in ctx. A *gin.Context
// works here because it resolves string keys from its key store.
func WithContext(ctx context.Context) *Logger {
	l := root()
	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return l.WithField(RequestIDKey, id)
	}
	return l
}

func WithComponent(component string) *Logger {
	return root().WithField("component", component)
}

func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
