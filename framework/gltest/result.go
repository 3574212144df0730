package gltest

import "fmt"

// Outcome is the result classification recorded for one executed case.
type Outcome string

const (
	Pass                 Outcome = "Pass"
	Fail                 Outcome = "Fail"
	QualityWarning       Outcome = "QualityWarning"
	CompatibilityWarning Outcome = "CompatibilityWarning"
	NotSupported         Outcome = "NotSupported"
	ResourceError        Outcome = "ResourceError"
	InternalError        Outcome = "InternalError"
)

// IsFailure reports whether the outcome counts as a failed case when
// summarizing a run. NotSupported and the warning outcomes do not.
func (o Outcome) IsFailure() bool {
	switch o {
	case Fail, ResourceError, InternalError:
		return true
	default:
		return false
	}
}

// Metric is an optional numeric sub-result attached to a case record, for
// example a throughput figure from a performance-flavored case.
type Metric struct {
	Name  string
	Value float64
	Unit  string
}

// Result is what executing one case produces.
type Result struct {
	Outcome Outcome
	Detail  string
	Metrics []Metric
}

// Record is one entry in the test log: a case path plus its result.
type Record struct {
	Path   string
	Result Result
}

// Passf builds a Pass result with a formatted detail message.
func Passf(format string, args ...interface{}) Result {
	return Result{Outcome: Pass, Detail: fmt.Sprintf(format, args...)}
}

// Failf builds a Fail result with a formatted detail message.
func Failf(format string, args ...interface{}) Result {
	return Result{Outcome: Fail, Detail: fmt.Sprintf(format, args...)}
}

// NotSupportedf builds a NotSupported result; used when the active driver
// lacks a capability, which is not an error.
func NotSupportedf(format string, args ...interface{}) Result {
	return Result{Outcome: NotSupported, Detail: fmt.Sprintf(format, args...)}
}

// ResourceErrorf builds a ResourceError result; used when required test input
// data could not be read.
func ResourceErrorf(format string, args ...interface{}) Result {
	return Result{Outcome: ResourceError, Detail: fmt.Sprintf(format, args...)}
}

// QualityWarningf builds a QualityWarning result.
func QualityWarningf(format string, args ...interface{}) Result {
	return Result{Outcome: QualityWarning, Detail: fmt.Sprintf(format, args...)}
}

// Summary aggregates a finished (or aborted) run.
type Summary struct {
	Executed int
	Listed   int
	Counts   map[Outcome]int
}

func (s *Summary) add(o Outcome) {
	if s.Counts == nil {
		s.Counts = make(map[Outcome]int)
	}
	s.Counts[o]++
	s.Executed++
}

// FailureCount returns how many executed cases ended in a failure outcome.
func (s Summary) FailureCount() int {
	n := 0
	for o, c := range s.Counts {
		if o.IsFailure() {
			n += c
		}
	}
	return n
}
