package infra

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Initialize loads a .env file into the process environment if present.
func Initialize(log logrus.FieldLogger) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found; using environment variables")
	}
}

// NewLogger builds the process logger: JSON in prod, text elsewhere.
func NewLogger(cfg *Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)

	if cfg != nil && cfg.IsProd() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.SetLevel(logrus.InfoLevel)
	if cfg != nil && cfg.LogLevel != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.WithField("level", cfg.LogLevel).Warn("Unknown LOG_LEVEL, using info")
		} else {
			log.SetLevel(level)
		}
	}
	return log
}
