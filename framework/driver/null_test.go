package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
)

func newNullForTest(t *testing.T) Library {
	t.Helper()
	platform := NewPlatform(Options{Kind: KindNull})
	lib, err := platform.CreateLibrary(LibraryGLES2, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func TestNullLibrarySatisfiesTheInterfaceContract(t *testing.T) {
	lib := newNullForTest(t)

	funcs := lib.FunctionLibrary()
	require.NotNil(t, funcs, "every variant must expose a usable function library")

	proc, err := funcs.Proc("glGetString")
	require.NoError(t, err)
	assert.NotZero(t, proc)
	assert.True(t, funcs.Contains("glGetError"))

	_, err = funcs.Proc("glNotARealEntryPoint")
	assert.ErrorIs(t, err, ErrProcNotFound)
	assert.False(t, funcs.Contains("glNotARealEntryPoint"))
}

func TestNullProcHandlesAreStable(t *testing.T) {
	first := newNullForTest(t)
	second := newNullForTest(t)

	p1, err := first.FunctionLibrary().Proc("glCompileShader")
	require.NoError(t, err)
	p2, err := second.FunctionLibrary().Proc("glCompileShader")
	require.NoError(t, err)
	assert.Equal(t, p1, p2, "handles must be deterministic across instances")
}

func TestNullContextReturnsBenignDefaults(t *testing.T) {
	gl := newNullForTest(t).Context()

	assert.Contains(t, gl.GetString(gles.Version), "OpenGL ES 2.0")
	assert.NotEmpty(t, gl.GetString(gles.Vendor))
	assert.NotEmpty(t, gl.GetString(gles.Renderer))
	assert.Equal(t, gles.NoError, gl.GetError())

	out := []int32{0}
	gl.GetIntegerv(gles.MaxVertexAttribs, out)
	assert.Equal(t, gles.NoError, gl.GetError())
	assert.GreaterOrEqual(t, out[0], gles.MinimumLimits[gles.MaxVertexAttribs])
}

func TestNullContextFlagsInvalidEnums(t *testing.T) {
	gl := newNullForTest(t).Context()

	out := []int32{0}
	gl.GetIntegerv(gles.Enum(0xFFFF), out)
	assert.Equal(t, gles.InvalidEnum, gl.GetError())
	// The error flag clears on read.
	assert.Equal(t, gles.NoError, gl.GetError())
}

func TestNullShaderLifecycle(t *testing.T) {
	gl := newNullForTest(t).Context()

	shader := gl.CreateShader(gles.VertexShader)
	require.NotZero(t, shader)
	gl.ShaderSource(shader, "void main() {}")
	gl.CompileShader(shader)
	assert.Equal(t, int32(1), gl.GetShaderi(shader, gles.CompileStatus))
	assert.Empty(t, gl.GetShaderInfoLog(shader))
	gl.DeleteShader(shader)
	assert.Equal(t, gles.NoError, gl.GetError())

	// Operating on a deleted shader sets an error instead of panicking.
	gl.CompileShader(shader)
	assert.Equal(t, gles.InvalidValue, gl.GetError())
}

func TestCreateShaderRejectsBadType(t *testing.T) {
	gl := newNullForTest(t).Context()

	assert.Zero(t, gl.CreateShader(gles.Enum(0x1234)))
	assert.Equal(t, gles.InvalidEnum, gl.GetError())
}
