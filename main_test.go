package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengl-conformance/gles2-test-harness/framework/driver"
)

func runHarness(t *testing.T, args ...string) (logContent string, consoleOutput string, err error) {
	t.Helper()
	var params commandParams
	require.True(t, params.Read(append([]string{"gles2-test-harness"}, args...), io.Discard))

	var console bytes.Buffer
	err = run(&params, &console)

	data, readErr := os.ReadFile(params.config.LogFile)
	require.NoError(t, readErr)
	return string(data), console.String(), err
}

func TestQuietModeSuppressesConsoleButNotLog(t *testing.T) {
	dir := t.TempDir()

	loudLog, loudConsole, err := runHarness(t,
		"--deqp-log-file="+filepath.Join(dir, "loud.qpa"),
		"--deqp-archive-dir="+dir,
	)
	require.NoError(t, err)

	quietLog, quietConsole, err := runHarness(t,
		"--deqp-log-file="+filepath.Join(dir, "quiet.qpa"),
		"--deqp-archive-dir="+dir,
		"--deqp-quiet",
	)
	require.NoError(t, err)

	assert.NotEmpty(t, loudConsole)
	assert.Empty(t, quietConsole, "quiet mode must silence the console entirely")
	assert.Equal(t, loudLog, quietLog, "quiet mode must not change the log file")
}

func TestCaseFailuresDoNotFailTheProcess(t *testing.T) {
	dir := t.TempDir()
	// A broken case definition file produces a ResourceError record, which is
	// a case outcome, not a harness failure.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders", "broken.yaml"), []byte("{{{nope"), 0o644))

	logContent, _, err := runHarness(t,
		"--deqp-log-file="+filepath.Join(dir, "log.qpa"),
		"--deqp-archive-dir="+dir,
	)

	assert.NoError(t, err, "case-level failures must not surface as process errors")
	assert.Contains(t, logContent, `StatusCode="ResourceError"`)
}

func TestSystemDriverHonorsConfiguredLibraryPath(t *testing.T) {
	dir := t.TempDir()
	var params commandParams
	require.True(t, params.Read([]string{
		"gles2-test-harness",
		"--deqp-log-file=" + filepath.Join(dir, "log.qpa"),
		"--deqp-archive-dir=" + dir,
		"--deqp-gl-driver=system",
		"--deqp-gl-library=" + filepath.Join(dir, "no-such-driver.so"),
	}, io.Discard))

	// The override must reach the loader: with a bogus path the run fails at
	// setup even on hosts where the default system driver is installed.
	err := run(&params, io.Discard)
	require.Error(t, err)
	var loadErr *driver.LoadError
	if errors.As(err, &loadErr) {
		assert.Equal(t, filepath.Join(dir, "no-such-driver.so"), loadErr.LibraryName)
	} else {
		// Platforms without dynamic loading report unavailability instead.
		assert.ErrorIs(t, err, driver.ErrDriverUnavailable)
	}
}

func TestCaseListRunMode(t *testing.T) {
	dir := t.TempDir()
	logContent, _, err := runHarness(t,
		"--deqp-log-file="+filepath.Join(dir, "cases.xml"),
		"--deqp-archive-dir="+dir,
		"--deqp-runmode=xml-caselist",
	)
	require.NoError(t, err)

	assert.Contains(t, logContent, "<TestCaseList")
	assert.Contains(t, logContent, `CasePath="dEQP-GLES2.info.version"`)
	assert.NotContains(t, logContent, "StatusCode=", "list mode must not execute cases")
}
