package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger, set up once in main.
var Log *logrus.Logger

func BootstrapLogger() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetReportCaller(true)

	// JSON logs in Lambda so CloudWatch can index fields, text locally.
	if os.Getenv("APP_ENV") == "local" {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{})
		Log.SetLevel(logrus.InfoLevel)
	}
}
