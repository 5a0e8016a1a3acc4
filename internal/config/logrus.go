package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.WarnLevel)
	logg.SetOutput(os.Stderr)
}

// GetLogger returns the process logger.
func GetLogger() *logrus.Logger {
	return logg
}

// ParseLogLevel accepts the logrus level names.
func ParseLogLevel(level string) (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	return lvl, nil
}

// SetLogLevel sets the process logger's level.
func SetLogLevel(level string) error {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return err
	}
	logg.SetLevel(lvl)
	return nil
}

// LogError logs err with the module and function it came from.
func LogError(logger logrus.FieldLogger, moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
