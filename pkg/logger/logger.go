package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing to stderr.
func New() Logger { return NewWriter(os.Stderr) }

// NewWriter returns a Logger writing to w.
func NewWriter(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

// Discard returns a Logger that drops everything.
func Discard() Logger { return NewWriter(io.Discard) }

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
