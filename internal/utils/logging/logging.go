package logging

import "github.com/sirupsen/logrus"

var (
	logger *logrus.Entry
)

type Fields = logrus.Fields

func init() {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
}

func SetLevel(l logrus.Level) {
	logger.Logger.SetLevel(l)
}

// SetVerbose switches between info and debug output
func SetVerbose(v bool) {
	if v {
		SetLevel(logrus.DebugLevel)
		return
	}

	SetLevel(logrus.InfoLevel)
}

func Entry() *logrus.Entry {
	return logger
}

// ForNode scopes log lines to a participant
func ForNode(id string) *logrus.Entry {
	return logger.WithField("node", id)
}

func WithError(e error) *logrus.Entry {
	return logger.WithError(e)
}

func Error(args ...interface{}) {
	logger.Error(args...)
}
