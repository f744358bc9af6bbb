// Package logging configures the process-wide logrus logger and hands out
// zone loggers tagged with the emitting component.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the configured level cannot be parsed
const DefaultLevel = logrus.InfoLevel

// Logger is the shared logger behind every zone
var Logger = logrus.New()

// Setup sets the output and level of the shared logger. Unknown levels fall
// back to DefaultLevel and are reported once.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	Logger.SetOutput(out)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Logger.SetLevel(DefaultLevel)
		Logger.WithField("level", level).Warn("unknown log level, using default")
		return
	}
	Logger.SetLevel(lvl)
}

// Zone returns a logger entry tagged with the given zone name
func Zone(name string) *logrus.Entry {
	return Logger.WithField("zone", name)
}
