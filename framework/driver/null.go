package driver

import (
	"fmt"
	"sort"
	"sync"

	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
)

// The null driver stands in for a real GLES2 implementation in headless
// environments and in case-list-generation runs that never execute GPU work.
// Every entry point resolves, every call returns a benign default, and the
// behavior is fully deterministic so repeated runs produce identical logs.

const nullVersionString = "OpenGL ES 2.0 (null)"

// Entry points the null function library claims to export. The set covers
// every symbol the typed Context exposes, which is the same set the loader
// requires when validating a system library.
var nullEntryPoints = []string{
	"glGetString",
	"glGetIntegerv",
	"glGetError",
	"glCreateShader",
	"glShaderSource",
	"glCompileShader",
	"glGetShaderiv",
	"glGetShaderInfoLog",
	"glDeleteShader",
}

type nullFunctionLibrary struct {
	procs map[string]Proc
}

func newNullFunctionLibrary() *nullFunctionLibrary {
	names := append([]string(nil), nullEntryPoints...)
	sort.Strings(names)
	procs := make(map[string]Proc, len(names))
	for i, name := range names {
		// Synthetic handles: stable, nonzero, never dereferenced.
		procs[name] = Proc(i + 1)
	}
	return &nullFunctionLibrary{procs: procs}
}

func (l *nullFunctionLibrary) Proc(name string) (Proc, error) {
	if p, ok := l.procs[name]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrProcNotFound, name)
}

func (l *nullFunctionLibrary) Contains(name string) bool {
	_, ok := l.procs[name]
	return ok
}

type nullShader struct {
	shaderType gles.Enum
	source     string
}

type nullContext struct {
	lock       sync.Mutex
	lastError  gles.Enum
	nextShader uint32
	shaders    map[uint32]*nullShader
}

func newNullContext() *nullContext {
	return &nullContext{nextShader: 1, shaders: make(map[uint32]*nullShader)}
}

func (c *nullContext) setError(err gles.Enum) {
	if c.lastError == gles.NoError {
		c.lastError = err
	}
}

func (c *nullContext) GetString(name gles.Enum) string {
	switch name {
	case gles.Vendor:
		return "null"
	case gles.Renderer:
		return "GLES2 null driver"
	case gles.Version:
		return nullVersionString
	case gles.ShadingLanguageVersion:
		return "OpenGL ES GLSL ES 1.00 (null)"
	case gles.Extensions:
		return ""
	default:
		c.lock.Lock()
		c.setError(gles.InvalidEnum)
		c.lock.Unlock()
		return ""
	}
}

func (c *nullContext) GetIntegerv(pname gles.Enum, out []int32) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if len(out) == 0 {
		return
	}
	if min, ok := gles.MinimumLimits[pname]; ok {
		out[0] = min
		return
	}
	c.setError(gles.InvalidEnum)
}

func (c *nullContext) GetError() gles.Enum {
	c.lock.Lock()
	defer c.lock.Unlock()
	err := c.lastError
	c.lastError = gles.NoError
	return err
}

func (c *nullContext) CreateShader(shaderType gles.Enum) uint32 {
	c.lock.Lock()
	defer c.lock.Unlock()
	if shaderType != gles.VertexShader && shaderType != gles.FragmentShader {
		c.setError(gles.InvalidEnum)
		return 0
	}
	name := c.nextShader
	c.nextShader++
	c.shaders[name] = &nullShader{shaderType: shaderType}
	return name
}

func (c *nullContext) ShaderSource(shader uint32, source string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	s, ok := c.shaders[shader]
	if !ok {
		c.setError(gles.InvalidValue)
		return
	}
	s.source = source
}

func (c *nullContext) CompileShader(shader uint32) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.shaders[shader]; !ok {
		c.setError(gles.InvalidValue)
	}
	// Compilation always succeeds; the null driver has no compiler.
}

func (c *nullContext) GetShaderi(shader uint32, pname gles.Enum) int32 {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.shaders[shader]; !ok {
		c.setError(gles.InvalidValue)
		return 0
	}
	switch pname {
	case gles.CompileStatus:
		return 1
	case gles.InfoLogLength:
		return 0
	default:
		c.setError(gles.InvalidEnum)
		return 0
	}
}

func (c *nullContext) GetShaderInfoLog(shader uint32) string {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.shaders[shader]; !ok {
		c.setError(gles.InvalidValue)
	}
	return ""
}

func (c *nullContext) DeleteShader(shader uint32) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.shaders[shader]; !ok {
		c.setError(gles.InvalidValue)
		return
	}
	delete(c.shaders, shader)
}

type nullLibrary struct {
	funcs *nullFunctionLibrary
	ctx   *nullContext
}

func newNullLibrary() Library {
	return &nullLibrary{
		funcs: newNullFunctionLibrary(),
		ctx:   newNullContext(),
	}
}

func (l *nullLibrary) FunctionLibrary() FunctionLibrary { return l.funcs }
func (l *nullLibrary) Context() gles.Context            { return l.ctx }
func (l *nullLibrary) Close() error                     { return nil }
