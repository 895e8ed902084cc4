package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type LogFile struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewLogFile returns nil when LOG_FILE is not set.
func NewLogFile() (*LogFile, error) {
	path, ok := os.LookupEnv("LOG_FILE")
	if !ok || path == "" {
		return nil, nil
	}
	maxSize, err := lookupPositiveInt("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupPositiveInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupPositiveInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}
	return &LogFile{
		Path:       path,
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAge,
	}, nil
}

func NewLogger() (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetLevel(level)

	file, err := NewLogFile()
	if err != nil {
		return nil, err
	}
	if file != nil {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to create log file hook: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
