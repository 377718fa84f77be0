// Package logging configures the process-wide structured logger.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared structured logger for diagnostics. It is usable with its
// default configuration; Init applies environment overrides at startup.
var Log = logrus.New()

// Init configures the logger from the environment.
//
// LOG_LEVEL sets the level (default "info"). LOG_FORMAT selects "json" for
// machine-readable output or text otherwise. Diagnostics go to stderr so the
// battle narrative on stdout stays clean.
func Init() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stderr)
}
