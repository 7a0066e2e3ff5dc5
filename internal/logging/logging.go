// Package logging holds the process-wide zap logger.
package logging

import "go.uber.org/zap"

var log *zap.Logger = zap.NewNop()

// Init builds the global logger. Development mode uses the human-readable
// console encoder; production mode emits JSON.
func Init(dev bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the global logger. Before Init it is a no-op logger, so
// library code can log unconditionally.
func L() *zap.Logger {
	return log
}

// Sync flushes buffered log entries. Call on process exit.
func Sync() {
	_ = log.Sync()
}
