package logger

import (
	"os"

	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = &logger.Logger{
	Out:   os.Stderr,
	Level: logger.InfoLevel,
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
	Hooks:    make(logger.LevelHooks),
	ExitFunc: os.Exit,
}

// Prefixed returns an entry rendered under the given prefix.
func Prefixed(prefix string) *logger.Entry {
	return L.WithField("prefix", prefix)
}
