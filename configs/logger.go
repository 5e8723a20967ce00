package configs

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger sets up the process-wide logrus logger. Call once at startup
// before anything asks for a contextual entry.
func InitLogger() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	level, err := logrus.ParseLevel(strings.ToLower(envOrDefault("LOG_LEVEL", "info")))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// LogWithContext returns an entry tagged with the originating service and
// operation so log lines can be traced back to a subsystem.
func LogWithContext(service, operation string) *logrus.Entry {
	if Logger == nil {
		InitLogger()
	}
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"operation": operation,
	})
}
