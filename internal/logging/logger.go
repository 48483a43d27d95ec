package logging

import (
	"encoding/json"
	"fmt"
	"log"

	golog "github.com/fclairamb/go-log"
)

// Logger prints events through the standard logger, with the
// key-value pairs encoded as JSON.
type Logger struct {
	Verbose bool

	keyvals []interface{}
}

func NewLogger(verbose bool) *Logger {
	return &Logger{Verbose: verbose}
}

func (l *Logger) log(level, event string, keyvals []interface{}) {
	all := append(append([]interface{}{}, l.keyvals...), keyvals...)
	for i, v := range all {
		if err, ok := v.(error); ok {
			all[i] = err.Error()
		}
	}
	k, err := json.Marshal(all)
	if err != nil {
		log.Println(level, event, fmt.Sprint(all))
		return
	}
	log.Println(level, event, string(k))
}

func (l *Logger) Debug(event string, keyvals ...interface{}) {
	if l.Verbose {
		l.log("DEBUG", event, keyvals)
	}
}

func (l *Logger) Info(event string, keyvals ...interface{}) {
	l.log("INFO", event, keyvals)
}

func (l *Logger) Warn(event string, keyvals ...interface{}) {
	l.log("WARN", event, keyvals)
}

func (l *Logger) Error(event string, keyvals ...interface{}) {
	l.log("ERROR", event, keyvals)
}

func (l *Logger) With(keyvals ...interface{}) golog.Logger {
	return &Logger{
		Verbose: l.Verbose,
		keyvals: append(append([]interface{}{}, l.keyvals...), keyvals...),
	}
}
