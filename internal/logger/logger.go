// Package logger adapts zerolog to the logging interfaces of third party libraries.
package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Leveled forwards retryablehttp log lines to the global zerolog logger.
// Everything is logged at debug level, since the HTTP client is chatty.
type Leveled struct{}

func (Leveled) Error(msg string, keysAndValues ...interface{}) {
	emit(log.Debug(), msg, keysAndValues)
}

func (Leveled) Warn(msg string, keysAndValues ...interface{}) {
	emit(log.Debug(), msg, keysAndValues)
}

func (Leveled) Info(msg string, keysAndValues ...interface{}) {
	emit(log.Debug(), msg, keysAndValues)
}

func (Leveled) Debug(msg string, keysAndValues ...interface{}) {
	emit(log.Debug(), msg, keysAndValues)
}

func emit(e *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	e.Msg(msg)
}
