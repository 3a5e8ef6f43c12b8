package services

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger returns the process-wide logger. Output goes to stderr so that it
// never mixes with the stdio MCP transport; LOG_LEVEL selects the level.
var Logger = sync.OnceValue(func() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logger.WithError(err).Warn("Invalid LOG_LEVEL, using info")
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
})
