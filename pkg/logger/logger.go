package logger

import "log"

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
}

func NewLogger(level int) *defaultLogger {
	return &defaultLogger{level: level}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.printf(DEBUG, msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.printf(INFO, msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.printf(WARNING, msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.printf(ERROR, msg, a...)
}

func (l *defaultLogger) printf(level int, msg string, a ...any) {
	if l.level <= level {
		log.Printf(msg+"\n", a...)
	}
}
