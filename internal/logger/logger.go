// internal/logger/logger.go

// Package logger configures the application logger.
package logger

import (
	"github.com/sirupsen/logrus"
)

// New creates a logrus logger for the given environment and level. JSON
// output in production, human-readable text everywhere else.
func New(environment, level string) *logrus.Logger {
	log := logrus.New()

	if environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}
