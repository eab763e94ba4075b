package log

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger      = newLogger()
	verbose     = false
	disableLogs = false
	logPrefixes = map[logrus.Level]string{
		logrus.DebugLevel: "\033[37m[DBG]\033[0m", // White
		logrus.InfoLevel:  "\033[36m[INF]\033[0m", // Cyan
		logrus.WarnLevel:  "\033[33m[WRN]\033[0m", // Yellow
		logrus.ErrorLevel: "\033[31m[ERR]\033[0m", // Red
		logrus.FatalLevel: "\033[31m[ERR]\033[0m",
	}
	plainPrefixes = map[logrus.Level]string{
		logrus.DebugLevel: "[DBG]",
		logrus.InfoLevel:  "[INF]",
		logrus.WarnLevel:  "[WRN]",
		logrus.ErrorLevel: "[ERR]",
		logrus.FatalLevel: "[ERR]",
	}
)

// FileOptions configures logging to a rotated file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&prefixFormatter{color: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// prefixFormatter renders entries as "[LVL] message key=value ...".
type prefixFormatter struct {
	color      bool
	timestamps bool
}

func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if f.timestamps {
		b.WriteString(entry.Time.Format("2006-01-02T15:04:05.000Z07:00"))
		b.WriteByte(' ')
	}

	prefixes := plainPrefixes
	if f.color {
		prefixes = logPrefixes
	}
	b.WriteString(prefixes[entry.Level])
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, key := range sortedKeys(entry.Data) {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(formatField(entry.Data[key]))
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	verbose = v
	if v {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verbose
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	verbose = lvl >= logrus.DebugLevel
	return nil
}

// SetFile sends all log output to a rotated file. An empty path restores
// stderr. It has no effect once logs are disabled.
func SetFile(opts FileOptions) {
	if disableLogs {
		return
	}
	if opts.Path == "" {
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&prefixFormatter{color: true})
		return
	}

	logger.SetOutput(&lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	})
	logger.SetFormatter(&prefixFormatter{timestamps: true})
}

// SetOutput redirects log output without color codes. Used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
	logger.SetFormatter(&prefixFormatter{})
}

// DisableLogs disables all logging.
func DisableLogs() {
	disableLogs = true
	logger.SetOutput(io.Discard)
}

// IsDisabled returns true if logging is disabled.
func IsDisabled() bool {
	return disableLogs
}

// WithField returns an entry carrying a structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
