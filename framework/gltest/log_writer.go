package gltest

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// SessionInfo is recorded in the log header so a log is interpretable on its
// own: which filter, surface, and driver produced it.
type SessionInfo struct {
	CaseFilter string
	Surface    SurfaceConfig
	Driver     string
}

// LogWriter is the test log: an append-only structured record stream. Each
// record is written and flushed as soon as its case finishes, so a log from a
// run aborted mid-way is still valid and inspectable up to the abort point.
type LogWriter struct {
	f      *os.File
	w      *bufio.Writer
	mode   RunMode
	closed bool
	err    error
}

type xmlCaseResult struct {
	XMLName xml.Name    `xml:"TestCaseResult"`
	Path    string      `xml:"CasePath,attr"`
	Outcome Outcome     `xml:"StatusCode,attr"`
	Detail  string      `xml:"Details,omitempty"`
	Metrics []xmlMetric `xml:"Number"`
}

type xmlMetric struct {
	Name  string  `xml:"Name,attr"`
	Unit  string  `xml:"Unit,attr,omitempty"`
	Value float64 `xml:",chardata"`
}

type xmlCaseListEntry struct {
	XMLName xml.Name `xml:"TestCase"`
	Path    string   `xml:"CasePath,attr"`
}

type xmlSummary struct {
	XMLName  xml.Name `xml:"Summary"`
	Executed int      `xml:"Executed,attr"`
	Listed   int      `xml:"Listed,attr,omitempty"`
	Failed   int      `xml:"Failed,attr"`
}

// NewLogWriter opens the log destination and writes the session header.
// The caller must Close the writer on every exit path.
func NewLogWriter(path string, mode RunMode, info SessionInfo) (*LogWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create log file: %w", err)
	}
	l := &LogWriter{f: f, w: bufio.NewWriter(f), mode: mode}
	if err := l.writeHeader(info); err != nil {
		_ = f.Close()
		return nil, err
	}
	return l, nil
}

func (l *LogWriter) writeHeader(info SessionInfo) error {
	fmt.Fprintln(l.w, xml.Header[:len(xml.Header)-1])
	root := l.rootElement()
	fmt.Fprintf(l.w, "<%s caseFilter=%q surfaceType=%q surfaceWidth=\"%d\" surfaceHeight=\"%d\" driver=%q>\n",
		root, info.CaseFilter, info.Surface.Type, info.Surface.Width, info.Surface.Height, info.Driver)
	return l.flush()
}

func (l *LogWriter) rootElement() string {
	if l.mode == RunModeCaseList {
		return "TestCaseList"
	}
	return "TestResults"
}

// Append writes one case result record and flushes it to the destination.
func (l *LogWriter) Append(record Record) error {
	entry := xmlCaseResult{
		Path:    record.Path,
		Outcome: record.Result.Outcome,
		Detail:  record.Result.Detail,
	}
	for _, m := range record.Result.Metrics {
		entry.Metrics = append(entry.Metrics, xmlMetric{Name: m.Name, Unit: m.Unit, Value: m.Value})
	}
	return l.writeElement(entry)
}

// ListCase writes one case-list entry and flushes it to the destination.
func (l *LogWriter) ListCase(path string) error {
	return l.writeElement(xmlCaseListEntry{Path: path})
}

// WriteSummary appends the run summary element. Optional: a log without a
// summary (from an aborted run) is still well formed up to its last record.
func (l *LogWriter) WriteSummary(summary Summary) error {
	return l.writeElement(xmlSummary{
		Executed: summary.Executed,
		Listed:   summary.Listed,
		Failed:   summary.FailureCount(),
	})
}

func (l *LogWriter) writeElement(v interface{}) error {
	if l.closed {
		return fmt.Errorf("log writer is closed")
	}
	if l.err != nil {
		return l.err
	}
	data, err := xml.MarshalIndent(v, "  ", "  ")
	if err != nil {
		l.err = err
		return err
	}
	if _, err := l.w.Write(append(data, '\n')); err != nil {
		l.err = fmt.Errorf("writing log record: %w", err)
		return l.err
	}
	return l.flush()
}

func (l *LogWriter) flush() error {
	if err := l.w.Flush(); err != nil {
		l.err = fmt.Errorf("flushing log: %w", err)
		return l.err
	}
	return nil
}

// Close writes the closing tag and releases the file. It is idempotent and
// safe to defer alongside explicit handling of the returned error.
func (l *LogWriter) Close() error {
	if l.closed {
		return l.err
	}
	l.closed = true
	if l.err == nil {
		fmt.Fprintf(l.w, "</%s>\n", l.rootElement())
		l.err = l.w.Flush()
	}
	if cerr := l.f.Close(); cerr != nil && l.err == nil {
		l.err = cerr
	}
	return l.err
}

// Err returns the first write error encountered, if any.
func (l *LogWriter) Err() error { return l.err }

var _ io.Closer = (*LogWriter)(nil)
