package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	l.SetLevel(logrus.InfoLevel)
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			l.SetLevel(level)
		}
	}
	return l
}
