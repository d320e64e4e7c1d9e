package internal

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// SetLogLevel sets the logging level by name. Unknown names fall back to info.
func SetLogLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
