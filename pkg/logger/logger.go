package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Logger wraps a zap sugared logger with key/value pairs and redaction of
// credential-like values.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a logger for the given mode ("production" or anything else for
// development output).
func New(mode string) (log *Logger, err error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return log, err
	}

	log = &Logger{sugar: zapLogger.Sugar()}
	return log, err
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, redactKVs(keysAndValues)...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, redactKVs(keysAndValues)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, redactKVs(keysAndValues)...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, redactKVs(keysAndValues)...)
}

// With returns a child logger with the given key/value context attached.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(redactKVs(keysAndValues)...)}
}

// redactKVs replaces values whose keys look credential-like.
func redactKVs(kv []interface{}) []interface{} {
	if len(kv) == 0 {
		return kv
	}

	out := make([]interface{}, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}

		key, _ := kv[i].(string)
		if isSecretKey(key) {
			out = append(out, kv[i], "[REDACTED]")
			continue
		}
		out = append(out, kv[i], kv[i+1])
	}

	return out
}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	for _, marker := range []string{"api_key", "apikey", "token", "secret", "password"} {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}
