package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides component-scoped structured logging
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// Options selects level and output format
type Options struct {
	Level     string
	JSON      bool
	SessionID string
}

// New builds a zerolog-backed logger writing to stdout
func New(opts Options) (*ZerologAdapter, error) {
	return NewWithWriter(os.Stdout, opts)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(out io.Writer, opts Options) (*ZerologAdapter, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	writer := out
	if !opts.JSON {
		writer = zerolog.ConsoleWriter{Out: out, NoColor: out != os.Stdout}
	}

	adapter := NewZerolog(writer, level)
	if opts.SessionID != "" {
		adapter = adapter.WithSession(opts.SessionID)
	}
	return adapter, nil
}

// ParseLevel accepts zerolog level names; empty means info
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(name)
}

// NoOp discards everything
type NoOp struct{}

func (NoOp) Info(component, message string, fields map[string]interface{})    {}
func (NoOp) Error(component string, err error, fields map[string]interface{}) {}
func (NoOp) Warning(component, message string, fields map[string]interface{}) {}
func (NoOp) Debug(component, message string, fields map[string]interface{})   {}
