package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "vi-pong.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the match logger and, when debug is on, the open log file
// The terminal owns stdout/stderr, so without -debug every log line is discarded
func setupLogging(debug bool) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
	})

	if !debug {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	log.SetOutput(f)
	return logger, f
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(logDir, fmt.Sprintf("vi-pong-%s.log", stamp))
	_ = os.Rename(logPath, rotated)
}
