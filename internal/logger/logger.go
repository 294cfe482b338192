// Package logger provides the small leveled logger used by the huffzip
// command.
package logger

import (
	"io"
	"log"
)

// Logger writes informational and error messages.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger writing to w.  Infof output is discarded unless
// verbose is set; Errorf output is always written.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huffzip: ", 0), verbose: verbose}
}

func (s *stdLogger) Infof(format string, v ...any) {
	if s.verbose {
		s.l.Printf("[INFO] "+format, v...)
	}
}

func (s *stdLogger) Errorf(format string, v ...any) {
	s.l.Printf("[ERROR] "+format, v...)
}
