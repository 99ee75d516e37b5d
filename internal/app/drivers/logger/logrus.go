package logger

import (
	"io"
	"meditrack-client/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewConsoleLogger returns the human-facing logger of the CLI. Structured
// diagnostics go through zap instead.
func NewConsoleLogger(internalConfig *config.InternalConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	switch internalConfig.App.Env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
