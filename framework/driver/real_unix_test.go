//go:build linux || darwin || freebsd

package driver

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadableNonGLLibrary names a shared library that dlopen can always resolve
// but that exports none of the GLES2 entry points.
func loadableNonGLLibrary(t *testing.T) string {
	t.Helper()
	switch runtime.GOOS {
	case "linux":
		return "libc.so.6"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "freebsd":
		return "libc.so.7"
	default:
		t.Skipf("no known non-GL library on %s", runtime.GOOS)
		return ""
	}
}

func TestOpenSystemLibraryFailsAsLoadErrorWhenEntryPointsAreMissing(t *testing.T) {
	name := loadableNonGLLibrary(t)

	// A loadable library that lacks GL symbols must surface as a load error
	// naming the first unresolved entry point, never as a panic.
	lib, err := openSystemLibrary(name)
	require.Nil(t, lib)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, name, loadErr.LibraryName)
	assert.Equal(t, "glGetString", loadErr.Symbol)
	assert.ErrorIs(t, err, ErrProcNotFound)
}

func TestOpenSystemLibraryFailsAsLoadErrorWhenLibraryIsMissing(t *testing.T) {
	lib, err := openSystemLibrary("/definitely/not/a/driver.so")
	require.Nil(t, lib)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "/definitely/not/a/driver.so", loadErr.LibraryName)
	assert.Empty(t, loadErr.Symbol)
}

func TestNullDriverExportsEverySystemEntryPoint(t *testing.T) {
	// The auto fallback substitutes the null driver for the system one, so the
	// null function library must resolve every symbol the system context binds.
	lib := newNullLibrary()
	defer lib.Close() //nolint:errcheck

	ctx := &systemContext{}
	for _, ep := range ctx.entryPoints() {
		assert.True(t, lib.FunctionLibrary().Contains(ep.symbol), ep.symbol)
	}
}
