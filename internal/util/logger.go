package util

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger interface for output operations
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
	VerbosePrintf(format string, v ...interface{})
	VerbosePrintln(v ...interface{})
}

// SimpleLogger writes to the given writer
type SimpleLogger struct {
	writer  io.Writer
	verbose bool
}

// NewLogger creates a new logger that writes to the given writer
func NewLogger(writer io.Writer) Logger {
	return &SimpleLogger{writer: writer, verbose: false}
}

// NewVerboseLogger creates a new logger with verbose mode enabled
func NewVerboseLogger(writer io.Writer) Logger {
	return &SimpleLogger{writer: writer, verbose: true}
}

func (l *SimpleLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.writer, format, v...)
}

func (l *SimpleLogger) Println(v ...interface{}) {
	fmt.Fprintln(l.writer, v...)
}

func (l *SimpleLogger) VerbosePrintf(format string, v ...interface{}) {
	if l.verbose {
		fmt.Fprintf(l.writer, format, v...)
	}
}

func (l *SimpleLogger) VerbosePrintln(v ...interface{}) {
	if l.verbose {
		fmt.Fprintln(l.writer, v...)
	}
}

// fileLogger mirrors every line to a log file with a timestamp prefix.
// Console output passes through untouched; the file always records
// verbose lines so skip reasons survive a quiet run.
type fileLogger struct {
	console Logger
	file    io.Writer
	now     func() time.Time
}

// NewFileLogger wraps console so that all output is also appended to file.
func NewFileLogger(console Logger, file io.Writer) Logger {
	return &fileLogger{console: console, file: file, now: time.Now}
}

// OpenLogFile opens (or creates) the log file at path for appending.
func OpenLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (l *fileLogger) stamp(s string) {
	if s == "" || s == "\n" {
		fmt.Fprint(l.file, s)
		return
	}
	fmt.Fprintf(l.file, "%s %s", l.now().Format("2006-01-02 15:04:05"), s)
	if s[len(s)-1] != '\n' {
		fmt.Fprintln(l.file)
	}
}

func (l *fileLogger) Printf(format string, v ...interface{}) {
	l.console.Printf(format, v...)
	l.stamp(fmt.Sprintf(format, v...))
}

func (l *fileLogger) Println(v ...interface{}) {
	l.console.Println(v...)
	l.stamp(fmt.Sprintln(v...))
}

func (l *fileLogger) VerbosePrintf(format string, v ...interface{}) {
	l.console.VerbosePrintf(format, v...)
	l.stamp(fmt.Sprintf(format, v...))
}

func (l *fileLogger) VerbosePrintln(v ...interface{}) {
	l.console.VerbosePrintln(v...)
	l.stamp(fmt.Sprintln(v...))
}
