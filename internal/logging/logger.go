// Package logging configures the process-wide logrus logger: level, format,
// and an optional rotated log file.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 10
)

type LoggerSetupParams struct {
	// LogFileName is the rotated log file; ".log" is appended when missing.
	// Empty means stdout only.
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	// MaxSizeMB and MaxBackups tune rotation; zero picks the defaults.
	MaxSizeMB  int
	MaxBackups int
}

// Setup applies params to the standard logrus logger. With a file name the
// logs go to a lumberjack-rotated file, and also to stdout if LogToStdout.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Debugln("fitcore logs go to stdout only")
		return
	}

	file := rotatingFile(params)
	if params.LogToStdout {
		logrus.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		logrus.SetOutput(file)
	}
	logrus.WithFields(logrus.Fields{
		"file":   file.Filename,
		"stdout": params.LogToStdout,
	}).Debugln("fitcore log file opened")
}

func rotatingFile(params LoggerSetupParams) *lumberjack.Logger {
	name := params.LogFileName
	if !strings.HasSuffix(name, ".log") {
		name += ".log"
	}
	maxSize := params.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := params.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}
	return &lumberjack.Logger{
		Filename:   name,
		MaxSize:    maxSize, // megabytes
		MaxBackups: maxBackups,
		Compress:   true,
	}
}

// GetLevel parses a level name, falling back to info for anything unknown.
func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
