// Package log is a key/value wrapper around logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000"

// log levels, same values as logrus
const (
	LevelPanic uint32 = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var (
	// JSONFormat is true if logs are written as json
	JSONFormat bool

	logger = logrus.StandardLogger()
)

func init() {
	SetLogger(LevelInfo, false, false)
}

// SetLogger sets level and format of the logger.
func SetLogger(logLevel uint32, jsonFormat, colorFormat bool) {
	if logLevel > LevelTrace {
		logLevel = LevelTrace
	}
	JSONFormat = jsonFormat
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.Level(logLevel))
	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:     colorFormat,
			DisableColors:   !colorFormat,
			ForceQuote:      true,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
			DisableSorting:  true,
		})
	}
}

// SetOutput redirects the logger output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// GetLevel returns the current log level.
func GetLevel() uint32 {
	return uint32(logger.GetLevel())
}

// WithFields turns key value pairs into a log entry.
func WithFields(ctx ...interface{}) *logrus.Entry {
	length := len(ctx)
	if length%2 != 0 {
		logger.Debugf("log fields number %v is not even", length)
	}
	fields := make(logrus.Fields, length/2)
	for k := 0; k+2 <= length; k += 2 {
		key, ok := ctx[k].(string)
		if ok {
			fields[key] = ctx[k+1]
		} else {
			logger.Debugf("log field key '%v' is not string", ctx[k])
		}
	}
	return logger.WithFields(fields)
}

func Trace(msg string, ctx ...interface{}) {
	WithFields(ctx...).Trace(msg)
}

func Tracef(format string, args ...interface{}) {
	logger.Tracef(format, args...)
}

func Debug(msg string, ctx ...interface{}) {
	WithFields(ctx...).Debug(msg)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Info(msg string, ctx ...interface{}) {
	WithFields(ctx...).Info(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Print(msg ...interface{}) {
	logger.Print(msg...)
}

func Printf(format string, args ...interface{}) {
	logger.Printf(format, args...)
}

func Println(msg ...interface{}) {
	logger.Println(msg...)
}

func Warn(msg string, ctx ...interface{}) {
	WithFields(ctx...).Warn(msg)
}

func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func Error(msg string, ctx ...interface{}) {
	WithFields(ctx...).Error(msg)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func Fatal(msg string, ctx ...interface{}) {
	WithFields(ctx...).Fatal(msg)
}

func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}

func Panic(msg string, ctx ...interface{}) {
	WithFields(ctx...).Panic(msg)
}

func Panicf(format string, args ...interface{}) {
	logger.Panicf(format, args...)
}
