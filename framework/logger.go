package framework

import (
	"fmt"
	"strings"
	"sync"
)

// Logger is the minimal diagnostic output interface used throughout the
// harness. Test cases receive one so that their output can be captured and
// attached to the result record rather than going straight to the console.
type Logger interface {
	Println(args ...interface{})
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Println(args ...interface{})                {}
func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturingLogger records everything written to it. The run engine gives each
// executing case a fresh CapturingLogger and folds the captured messages into
// the case's log record. Messages carry no timestamps so that identical runs
// produce identical records.
type CapturingLogger struct {
	output []string
	lock   sync.Mutex
}

func (l *CapturingLogger) Println(args ...interface{}) {
	// Sprintln appends a newline; records are joined line-wise later.
	l.append(strings.TrimRight(fmt.Sprintln(args...), "\r\n"))
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.append(fmt.Sprintf(message, args...))
}

func (l *CapturingLogger) append(m string) {
	l.lock.Lock()
	l.output = append(l.output, m)
	l.lock.Unlock()
}

// Output returns a copy of the messages recorded so far.
func (l *CapturingLogger) Output() []string {
	l.lock.Lock()
	ret := append([]string(nil), l.output...)
	l.lock.Unlock()
	return ret
}

type prefixedLogger struct {
	base   Logger
	prefix string
}

// LoggerWithPrefix returns a Logger that prepends a fixed prefix to every
// message before delegating to baseLogger.
func LoggerWithPrefix(baseLogger Logger, prefix string) Logger {
	return prefixedLogger{baseLogger, prefix}
}

func (p prefixedLogger) Println(args ...interface{}) {
	p.base.Println(append([]interface{}{p.prefix}, args...)...)
}

func (p prefixedLogger) Printf(message string, args ...interface{}) {
	p.base.Printf(p.prefix+message, args...)
}
