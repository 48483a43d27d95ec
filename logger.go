package timebridge

import (
	golog "github.com/fclairamb/go-log"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, keyvals ...interface{}) {}
func (nopLogger) Info(event string, keyvals ...interface{})  {}
func (nopLogger) Warn(event string, keyvals ...interface{})  {}
func (nopLogger) Error(event string, keyvals ...interface{}) {}

func (l nopLogger) With(keyvals ...interface{}) golog.Logger {
	return l
}
