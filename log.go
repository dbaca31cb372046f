package reveal

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newDefaultLogger()

func newDefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "reveal",
		Level:  log.WarnLevel,
	})
}

// SetLogger replaces the package logger. A nil logger discards all output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}
