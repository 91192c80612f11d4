package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/play"
	"io"
)

var Log = logrus.New()

var loggers = []*logrus.Logger{Log, game.Log, play.Log}

// configureLogging points every package logger at the same level and output.
// The terminal screen owns the console, so console logging only happens in
// plain mode without a log file.
func configureLogging(s settings, console io.Writer) error {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	hooks := make(logrus.LevelHooks)
	if s.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   s.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", s.LogFile)
		}
		hooks.Add(hook)
	}

	output := console
	if s.LogFile != "" || !s.Plain {
		output = io.Discard
	}

	for _, log := range loggers {
		log.SetLevel(level)
		log.SetOutput(output)
		log.ReplaceHooks(hooks)
	}
	return nil
}
