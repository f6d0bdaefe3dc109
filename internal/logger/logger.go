package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init; packages exercised
// only by tests never call Init and get quiet warn-level output on stderr.
var Log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Init configures Log. LOG_LEVEL and LOG_FORMAT override the values passed in
// (which normally come from config.yaml).
func Init(level, format string) {
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// SetOutput redirects Log. The terminal host sends logs to a file so they do
// not tear the tcell screen.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
