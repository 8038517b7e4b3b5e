// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the logger shared by every package. It is usable before Init with
// logrus defaults.
var Log = logrus.New()

// Init configures Log from the environment. LOG_LEVEL picks the level
// (info when unset or invalid) and LOG_FORMAT=json switches to JSON output.
// Call it once from main.
func Init() {
	InitTo(os.Stdout)
}

// InitTo is Init writing to w.
func InitTo(w io.Writer) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	Log.SetOutput(w)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
