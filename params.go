package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/opengl-conformance/gles2-test-harness/framework/driver"
	"github.com/opengl-conformance/gles2-test-harness/framework/gltest"
)

const (
	defaultLogFile       = "TestResults.qpa"
	defaultSurfaceWidth  = 256
	defaultSurfaceHeight = 256
)

type commandParams struct {
	config     gltest.Config
	runMode    string
	surface    string
	driverKind string
}

// Read parses the process arguments. It returns false (after printing usage)
// on any parse or validation error; the configuration is immutable afterward.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Var(&c.config.CaseFilter, "deqp-case", "wildcard pattern(s) selecting test cases to run (comma separated)")
	fs.StringVar(&c.config.LogFile, "deqp-log-file", defaultLogFile, "test log destination path")
	fs.StringVar(&c.runMode, "deqp-runmode", "normal", "run mode: normal or xml-caselist")
	fs.BoolVar(&c.config.Quiet, "deqp-quiet", false, "suppress console output (the log file is unaffected)")
	fs.StringVar(&c.config.ArchiveDir, "deqp-archive-dir", ".", "root directory for test input data")
	fs.StringVar(&c.surface, "deqp-surface-type", string(gltest.SurfaceFBO), "surface type: fbo, window, or pixmap")
	fs.IntVar(&c.config.Surface.Width, "deqp-surface-width", defaultSurfaceWidth, "render surface width")
	fs.IntVar(&c.config.Surface.Height, "deqp-surface-height", defaultSurfaceHeight, "render surface height")
	fs.BoolVar(&c.config.CaseListFilter, "deqp-caselist-filter", false, "apply the case filter in xml-caselist mode")
	fs.StringVar(&c.driverKind, "deqp-gl-driver", string(driver.KindNull), "driver variant: null, system, or auto")
	fs.StringVar(&c.config.GLLibrary, "deqp-gl-library", "", "override the system GLES2 shared library path")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return false
	}

	var err error
	if c.config.RunMode, err = gltest.ParseRunMode(c.runMode); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	if c.config.Surface.Type, err = gltest.ParseSurfaceType(c.surface); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	if _, err = driver.ParseKind(c.driverKind); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	if err = c.config.Validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	return true
}

func (c *commandParams) kind() driver.Kind {
	k, _ := driver.ParseKind(c.driverKind)
	return k
}
