// Command gles2-test-harness runs an OpenGL ES 2.0 conformance test battery
// against either the installed system driver or a built-in null driver, and
// writes one structured log record per executed case.
//
// Example usage:
//
//	gles2-test-harness --deqp-case='dEQP-GLES2.info.*' --deqp-log-file=log.xml
//	gles2-test-harness --deqp-runmode=xml-caselist --deqp-log-file=cases.xml
//
// The exit status reflects only harness-level failures (bad configuration,
// unreadable archive, driver load errors); individual case outcomes live
// exclusively in the log file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/opengl-conformance/gles2-test-harness/framework"
	"github.com/opengl-conformance/gles2-test-harness/framework/archive"
	"github.com/opengl-conformance/gles2-test-harness/framework/driver"
	"github.com/opengl-conformance/gles2-test-harness/framework/gltest"
	"github.com/opengl-conformance/gles2-test-harness/gles2tests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args, os.Stderr) {
		os.Exit(1)
	}

	if err := run(&params, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run assembles configuration, archive, log, platform, and app in that order,
// then drives the iteration loop. Every error it returns is a setup-level
// failure; per-case faults are absorbed inside App.Iterate.
func run(params *commandParams, consoleOut io.Writer) error {
	if params.config.Quiet {
		consoleOut = io.Discard
	}

	arc := archive.Dir(params.config.ArchiveDir)

	log, err := gltest.NewLogWriter(params.config.LogFile, params.config.RunMode, gltest.SessionInfo{
		CaseFilter: params.config.CaseFilter.String(),
		Surface:    params.config.Surface,
		Driver:     params.driverKind,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	platform := driver.NewPlatform(driver.Options{
		Kind:   params.kind(),
		Logger: framework.LoggerWithPrefix(consoleLogger{consoleOut}, "platform: "),
	})

	console := gltest.ConsoleTestLogger{Out: consoleOut, DetailOnFailure: true}
	root := gles2tests.BuildPackage(arc, consoleLogger{consoleOut})

	app, err := gltest.NewApp(platform, arc, log, console, &params.config, root)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	for app.Iterate() {
	}
	if err := app.Err(); err != nil {
		return err
	}

	summary := app.Summary()
	console.RunFinished(summary)
	if err := log.WriteSummary(summary); err != nil {
		return err
	}
	return log.Close()
}

// consoleLogger adapts an io.Writer to the framework.Logger interface for
// bootstrap-time diagnostics, honoring quiet mode through its writer.
type consoleLogger struct {
	out io.Writer
}

func (c consoleLogger) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

func (c consoleLogger) Printf(message string, args ...interface{}) {
	fmt.Fprintf(c.out, message+"\n", args...)
}
