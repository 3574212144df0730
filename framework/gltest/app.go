package gltest

import (
	"fmt"
	"runtime/debug"

	"github.com/opengl-conformance/gles2-test-harness/framework"
	"github.com/opengl-conformance/gles2-test-harness/framework/archive"
	"github.com/opengl-conformance/gles2-test-harness/framework/driver"
)

type appState int

const (
	stateReady appState = iota
	stateRunning
	stateDone
	stateFailed
)

// App owns one test run. Each Iterate call advances exactly one unit of work:
// it executes the next case matching the configured filter, or in case-list
// mode enumerates the next case into the log. Iterate returns false only once
// the hierarchy is exhausted; after that every call returns false.
//
// Per-case faults never escape Iterate: they become a single InternalError
// record and the run continues with the following case. Only a failure of the
// log itself moves the App into its failed state.
type App struct {
	cfg     *Config
	arc     archive.Archive
	log     *LogWriter
	console TestLogger
	library driver.Library

	plan    []plannedCase
	pos     int
	state   appState
	err     error
	summary Summary
}

// NewApp assembles a run from its four dependencies plus the case hierarchy.
// The GLES2 library is created here, so a driver-load failure surfaces as a
// construction error (a setup error), never as a test record.
func NewApp(
	platform driver.Platform,
	arc archive.Archive,
	log *LogWriter,
	console TestLogger,
	cfg *Config,
	root *Group,
) (*App, error) {
	if console == nil {
		console = NullTestLogger()
	}
	plan, err := flattenTree(root)
	if err != nil {
		return nil, err
	}

	var library driver.Library
	if cfg.RunMode == RunModeExecute {
		library, err = platform.CreateLibrary(driver.LibraryGLES2, cfg.GLLibrary)
		if err != nil {
			return nil, fmt.Errorf("cannot create GLES2 library: %w", err)
		}
	}

	return &App{
		cfg:     cfg,
		arc:     arc,
		log:     log,
		console: console,
		library: library,
		plan:    plan,
	}, nil
}

// Iterate advances one unit of work and reports whether more work remains.
func (a *App) Iterate() bool {
	switch a.state {
	case stateDone, stateFailed:
		return false
	case stateReady:
		a.state = stateRunning
	}

	for a.pos < len(a.plan) {
		c := a.plan[a.pos]
		a.pos++

		if a.cfg.RunMode == RunModeCaseList {
			if a.cfg.CaseListFilter && !a.cfg.CaseFilter.Match(c.path) {
				continue
			}
			if err := a.log.ListCase(c.path); err != nil {
				a.fail(err)
				return false
			}
			a.summary.Listed++
			a.console.CaseListed(c.path)
			return true
		}

		if !a.cfg.CaseFilter.Match(c.path) {
			continue // not logged: filtered-out cases leave no record
		}

		a.console.CaseStarted(c.path)
		result := a.execute(c)
		a.summary.add(result.Outcome)
		if err := a.log.Append(Record{Path: c.path, Result: result}); err != nil {
			a.fail(err)
			return false
		}
		a.console.CaseFinished(c.path, result)
		return true
	}

	a.state = stateDone
	return false
}

// execute runs one case, converting any panic into an InternalError result so
// a failing case can never abort the run. Output the case logged before a
// panic is kept: the captured lines are folded into the record detail on both
// the normal and the recovery path.
func (a *App) execute(c plannedCase) (result Result) {
	var captured framework.CapturingLogger
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Outcome: InternalError,
				Detail:  fmt.Sprintf("unexpected panic in test case: %+v\n%s", r, debug.Stack()),
			}
		}
		for _, m := range captured.Output() {
			if result.Detail != "" {
				result.Detail += "\n"
			}
			result.Detail += m
		}
	}()

	ctx := &Context{
		Archive: a.arc,
		Library: a.library,
		GL:      a.library.Context(),
		Surface: a.cfg.Surface,
		Log:     &captured,
	}
	return c.run(ctx)
}

func (a *App) fail(err error) {
	a.state = stateFailed
	a.err = err
}

// Summary returns the counts accumulated so far.
func (a *App) Summary() Summary { return a.summary }

// Err returns the harness-level error that moved the App into its failed
// state, or nil. Individual case outcomes are never reported here.
func (a *App) Err() error { return a.err }

// Close releases the driver library. The log writer is owned by the caller
// and closed separately.
func (a *App) Close() error {
	if a.library == nil {
		return nil
	}
	return a.library.Close()
}
