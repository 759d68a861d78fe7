package windlg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *logrus.Logger

// LogConfig controls the rotating file log.
type LogConfig struct {
	MaxSizeMB  int  // rotate when the file reaches this size (default 10)
	MaxBackups int  // old files to keep (default 5)
	MaxAgeDays int  // days to retain old files (default 7)
	Compress   bool // compress rotated files
	ToStdout   bool // mirror log output to stdout
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 7,
		Compress:   true,
		ToStdout:   false,
	}
}

// ConfigDir returns the directory used for the log file and, by the demo
// application, for its configuration.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "windlg")
}

// LogPath returns the path of the log file.
func LogPath() string {
	return filepath.Join(ConfigDir(), "windlg.log")
}

// InitLogger enables logging with the default configuration. The library
// logs nothing until this (or InitLoggerWithConfig) is called.
func InitLogger() error {
	return InitLoggerWithConfig(DefaultLogConfig())
}

// InitLoggerWithConfig enables logging with file rotation using the
// provided configuration.
func InitLoggerWithConfig(cfg LogConfig) error {
	l := logrus.New()

	logDir := ConfigDir()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   LogPath(),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}

	if cfg.ToStdout {
		l.SetOutput(io.MultiWriter(lj, os.Stdout))
	} else {
		l.SetOutput(lj)
	}

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	l.SetLevel(logrus.InfoLevel)

	log = l
	log.WithFields(logrus.Fields{
		"max_size_mb": cfg.MaxSizeMB,
		"max_backups": cfg.MaxBackups,
	}).Info("Logger initialized")
	return nil
}

// SetDebugLogging switches between debug and info level.
func SetDebugLogging(debug bool) {
	if log == nil {
		return
	}
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// LogInfo logs an info level message.
func LogInfo(format string, args ...interface{}) {
	if log != nil {
		log.Infof(format, args...)
	}
}

// LogDebug logs a debug level message.
func LogDebug(format string, args ...interface{}) {
	if log != nil {
		log.Debugf(format, args...)
	}
}

// LogWarn logs a warning level message.
func LogWarn(format string, args ...interface{}) {
	if log != nil {
		log.Warnf(format, args...)
	}
}

// LogError logs an error level message.
func LogError(format string, args ...interface{}) {
	if log != nil {
		log.Errorf(format, args...)
	}
}

// LogDialogShown records that a dialog window was created.
func LogDialogShown(kind, title string) {
	if log != nil {
		log.WithFields(logrus.Fields{
			"action": "dialog_shown",
			"dialog": kind,
		}).Infof("Dialog shown: %s", title)
	}
}

// LogDialogResult records the outcome of a dialog invocation.
func LogDialogResult(kind string, confirmed bool) {
	if log != nil {
		log.WithFields(logrus.Fields{
			"action":    "dialog_closed",
			"dialog":    kind,
			"confirmed": confirmed,
		}).Info("Dialog closed")
	}
}
