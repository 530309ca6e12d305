// Package logging provides a small logging abstraction so the import and
// schedule engines stay decoupled from the concrete logging framework.
package logging

import "github.com/sirupsen/logrus"

// Logger is the structured logging interface used throughout the
// application. Implementations attach fields and error context without
// leaking the underlying framework into callers.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output filterable across commands.
const (
	FieldFile       = "file_path"
	FieldFormat     = "format"
	FieldRow        = "row"
	FieldClient     = "client"
	FieldCapital    = "capital_id"
	FieldBatch      = "batch_id"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldStatus     = "status"
	FieldOutputFile = "output_file"
)

var global = logrus.New()

// GetLogger returns the process-wide logrus logger. Commands configure it
// once at startup; library packages receive a Logger through their
// constructors instead of reaching for this.
func GetLogger() *logrus.Logger {
	return global
}

// SetAllLogLevels forces the given level on the shared logger and on the
// logrus standard logger so loggers created before configuration agree.
func SetAllLogLevels(level logrus.Level) {
	global.SetLevel(level)
	logrus.SetLevel(level)
}
