package logging

import "github.com/sirupsen/logrus"

// LogrusSink adapts a *logrus.Logger to the Sink interface. Passing a nil
// Logger falls back to logrus.StandardLogger().
type LogrusSink struct {
	Logger *logrus.Logger
}

// NewLogrusSink returns a Sink backed by logger, or by logrus's standard
// logger when logger is nil.
func NewLogrusSink(logger *logrus.Logger) LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return LogrusSink{Logger: logger}
}

func (s LogrusSink) Log(level Level, category Category, msg string, fields Fields) {
	entry := s.Logger.WithField("category", string(category))
	if len(fields) > 0 {
		lf := make(logrus.Fields, len(fields))
		for k, v := range fields {
			lf[k] = v
		}
		entry = entry.WithFields(lf)
	}
	switch level {
	case Debug:
		entry.Debug(msg)
	case Info:
		entry.Info(msg)
	case Warn:
		entry.Warn(msg)
	case Error:
		entry.Error(msg)
	case Fatal:
		entry.Error(msg) // the core itself decides whether to abort; we never os.Exit from a sink
	default:
		entry.Info(msg)
	}
}
