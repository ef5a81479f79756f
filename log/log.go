// Package log is the service wide logrus logger. Deployed instances log JSON
// lines; local runs keep the padded text format.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Level logrus.Level

const (
	ErrorLevel = Level(logrus.ErrorLevel)
	WarnLevel  = Level(logrus.WarnLevel)
	InfoLevel  = Level(logrus.InfoLevel)
	DebugLevel = Level(logrus.DebugLevel)
)

type Fields = logrus.Fields

const jsonTimestamp = "2006-01-02T15:04:05.000Z07:00"

var Logger = logrus.New()

func init() {
	Logger.SetFormatter(textFormatter())
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "2006/01/02 15:04:05",
		PadLevelText:           true,
		DisableLevelTruncation: true,
	}
}

func SetLevel(level Level) {
	Logger.SetLevel(logrus.Level(level))
}

func SetJSON(enabled bool) {
	if !enabled {
		Logger.SetFormatter(textFormatter())
		return
	}
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: jsonTimestamp,
		FieldMap:        logrus.FieldMap{logrus.FieldKeyMsg: "message"},
	})
}

// SetOutput is used by tests to capture log lines.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

func WithFields(fields Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}

// WithCode starts an entry tagged with a dotted error code, e.g.
// "task.update_section.sic".
func WithCode(code string) *logrus.Entry {
	return Logger.WithField("code", code)
}

func Log(level Level, args ...any) {
	Logger.Logln(logrus.Level(level), args...)
}

func Debugf(format string, args ...any) {
	Logger.Debugf(format, args...)
}
func Debug(args ...any) {
	Logger.Debugln(args...)
}

func Infof(format string, args ...any) {
	Logger.Infof(format, args...)
}
func Info(args ...any) {
	Logger.Infoln(args...)
}

func Warnf(format string, args ...any) {
	Logger.Warnf(format, args...)
}

func Fatal(args ...any) {
	Logger.Fatalln(args...)
}
