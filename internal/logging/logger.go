package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a Field holding a string value.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates a Field holding an int value.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a Field holding a uint64 value.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a Field holding a float64 value.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Err creates a Field holding an error under the conventional "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Logger is the logging interface used by all components. The Printf and
// Println methods allow a Logger to stand in where a *log.Logger is
// expected.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a Logger writing human-readable output to stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "primegen")
}

// NewLogger returns a Logger writing to w with the given component name
// attached to every event.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

func (z *ZerologAdapter) applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// Info logs at info level with optional structured fields.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Error logs at error level; err may be nil.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs at debug level with optional structured fields.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (z *ZerologAdapter) Printf(format string, v ...interface{}) {
	z.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs its arguments at info level.
func (z *ZerologAdapter) Println(v ...interface{}) {
	z.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// StdLoggerAdapter implements Logger on top of the standard library's
// *log.Logger, for callers that cannot carry a zerolog dependency.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	return sb.String()
}

// Info logs at info level with a [INFO] prefix.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs at error level with a [ERROR] prefix; err may be nil.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		s.logger.Printf("[ERROR] %s error=%v%s", msg, err, formatFields(fields))
		return
	}
	s.logger.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug logs at debug level with a [DEBUG] prefix.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf forwards to the wrapped logger.
func (s *StdLoggerAdapter) Printf(format string, v ...interface{}) {
	s.logger.Printf(format, v...)
}

// Println forwards to the wrapped logger.
func (s *StdLoggerAdapter) Println(v ...interface{}) {
	s.logger.Println(v...)
}
