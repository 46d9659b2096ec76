package logging

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// UseFileLogger switches L to write to a rotated log file instead of stderr.
func UseFileLogger(filepath string) {
	writer := &lumberjack.Logger{
		Filename:   filepath,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
	}

	L = newLogger(writer)
}
