package logging

import (
	"github.com/sirupsen/logrus"
	"os"
)

// Log is replaced by BoostrapLogger.
var Log = logrus.New()

func BoostrapLogger(level string) {
	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors:    false,
			DisableQuote:     false,
			DisableTimestamp: false,
			FullTimestamp:    true,
			TimestampFormat:  "",
		},
		ReportCaller: true,
		Level:        logrus.DebugLevel,
		ExitFunc:     os.Exit,
	}

	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Log.Warnf("unknown log level %q, keeping debug", level)
		return
	}
	Log.SetLevel(parsed)
}
