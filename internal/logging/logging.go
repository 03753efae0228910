// Package logging is a minimal leveled logging facade over the standard
// log package. Output goes to stderr; everything below the configured
// level is discarded.
package logging

import (
	"io/ioutil"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var loggers = [...]*log.Logger{
	LevelDebug:   log.New(ioutil.Discard, "D ", log.Ldate|log.Ltime|log.LUTC),
	LevelInfo:    log.New(ioutil.Discard, "I ", log.Ldate|log.Ltime|log.LUTC),
	LevelWarning: log.New(ioutil.Discard, "W ", log.Ldate|log.Ltime|log.LUTC),
	LevelError:   log.New(ioutil.Discard, "E ", log.Ldate|log.Ltime|log.LUTC),
}

func init() {
	SetLevel(LevelWarning)
}

// SetLevel enables output for all loggers at or above the given level
// and discards output for the others.
func SetLevel(l Level) {
	for lvl, logger := range loggers {
		if Level(lvl) >= l {
			logger.SetOutput(os.Stderr)
		} else {
			logger.SetOutput(ioutil.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	loggers[LevelDebug].Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	loggers[LevelInfo].Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	loggers[LevelWarning].Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	loggers[LevelError].Printf(msg, v...)
}
