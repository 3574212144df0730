package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengl-conformance/gles2-test-harness/framework/driver"
	"github.com/opengl-conformance/gles2-test-harness/framework/gltest"
)

func parseArgs(t *testing.T, args ...string) (commandParams, bool, string) {
	t.Helper()
	var errOut bytes.Buffer
	var params commandParams
	ok := params.Read(append([]string{"gles2-test-harness"}, args...), &errOut)
	return params, ok, errOut.String()
}

func TestReadDefaults(t *testing.T) {
	params, ok, _ := parseArgs(t)
	require.True(t, ok)

	assert.Equal(t, defaultLogFile, params.config.LogFile)
	assert.Equal(t, gltest.RunModeExecute, params.config.RunMode)
	assert.Equal(t, gltest.SurfaceFBO, params.config.Surface.Type)
	assert.Equal(t, defaultSurfaceWidth, params.config.Surface.Width)
	assert.Equal(t, defaultSurfaceHeight, params.config.Surface.Height)
	assert.False(t, params.config.Quiet)
	assert.False(t, params.config.CaseListFilter)
	assert.Equal(t, driver.KindNull, params.kind())
	assert.False(t, params.config.CaseFilter.IsDefined())
}

func TestReadFullCommandLine(t *testing.T) {
	params, ok, _ := parseArgs(t,
		"--deqp-case=dEQP-GLES2.info.*",
		"--deqp-log-file=out.qpa",
		"--deqp-runmode=xml-caselist",
		"--deqp-quiet",
		"--deqp-archive-dir=/data/gl",
		"--deqp-surface-type=pixmap",
		"--deqp-surface-width=640",
		"--deqp-surface-height=480",
		"--deqp-gl-driver=auto",
		"--deqp-gl-library=/opt/gles/libGLESv2.so",
	)
	require.True(t, ok)

	assert.True(t, params.config.CaseFilter.Match("dEQP-GLES2.info.version"))
	assert.False(t, params.config.CaseFilter.Match("dEQP-GLES2.shaders.builtin.empty_main"))
	assert.Equal(t, "out.qpa", params.config.LogFile)
	assert.Equal(t, gltest.RunModeCaseList, params.config.RunMode)
	assert.True(t, params.config.Quiet)
	assert.Equal(t, "/data/gl", params.config.ArchiveDir)
	assert.Equal(t, gltest.SurfacePixmap, params.config.Surface.Type)
	assert.Equal(t, 640, params.config.Surface.Width)
	assert.Equal(t, 480, params.config.Surface.Height)
	assert.Equal(t, driver.KindAuto, params.kind())
	assert.Equal(t, "/opt/gles/libGLESv2.so", params.config.GLLibrary)
}

func TestReadRejectsBadValues(t *testing.T) {
	badArgs := [][]string{
		{"--deqp-runmode=fancy"},
		{"--deqp-surface-type=hologram"},
		{"--deqp-surface-width=0"},
		{"--deqp-surface-height=-5"},
		{"--deqp-gl-driver=hardware"},
		{"--deqp-log-file="},
		{"unexpected-positional"},
	}
	for _, args := range badArgs {
		t.Run(args[0], func(t *testing.T) {
			_, ok, errText := parseArgs(t, args...)
			assert.False(t, ok)
			assert.NotEmpty(t, errText)
		})
	}
}
