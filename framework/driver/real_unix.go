//go:build linux || darwin || freebsd

package driver

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
)

// defaultLibraryName is the shared library the real driver binds when no
// explicit path is configured.
const defaultLibraryName = "libGLESv2.so.2"

type glEntryPoint struct {
	symbol string
	fn     interface{}
}

type systemFunctionLibrary struct {
	name   string
	handle uintptr

	lock  sync.Mutex
	cache map[string]Proc
}

func (l *systemFunctionLibrary) Proc(name string) (Proc, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if p, ok := l.cache[name]; ok {
		return p, nil
	}
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrProcNotFound, name, l.name)
	}
	p := Proc(addr)
	l.cache[name] = p
	return p, nil
}

func (l *systemFunctionLibrary) Contains(name string) bool {
	_, err := l.Proc(name)
	return err == nil
}

// systemContext implements gles.Context on top of the resolved entry points.
// Function values are registered once, at load time, for the whole surface
// the battery uses; additional symbols stay available through Proc.
type systemContext struct {
	getString        func(name uint32) string
	getIntegerv      func(pname uint32, params *int32)
	getError         func() uint32
	createShader     func(shaderType uint32) uint32
	shaderSource     func(shader uint32, count int32, sources **byte, lengths *int32)
	compileShader    func(shader uint32)
	getShaderiv      func(shader uint32, pname uint32, params *int32)
	getShaderInfoLog func(shader uint32, bufSize int32, length *int32, infoLog *byte)
	deleteShader     func(shader uint32)
}

// entryPoints lists every symbol the context needs, paired with the function
// value it binds to. The loader resolves each symbol before registering any
// of them; a library missing one must fail as a load error, and registration
// panics on unresolved symbols.
func (c *systemContext) entryPoints() []glEntryPoint {
	return []glEntryPoint{
		{"glGetString", &c.getString},
		{"glGetIntegerv", &c.getIntegerv},
		{"glGetError", &c.getError},
		{"glCreateShader", &c.createShader},
		{"glShaderSource", &c.shaderSource},
		{"glCompileShader", &c.compileShader},
		{"glGetShaderiv", &c.getShaderiv},
		{"glGetShaderInfoLog", &c.getShaderInfoLog},
		{"glDeleteShader", &c.deleteShader},
	}
}

func (c *systemContext) GetString(name gles.Enum) string {
	return c.getString(uint32(name))
}

func (c *systemContext) GetIntegerv(pname gles.Enum, out []int32) {
	if len(out) == 0 {
		return
	}
	c.getIntegerv(uint32(pname), &out[0])
}

func (c *systemContext) GetError() gles.Enum {
	return gles.Enum(c.getError())
}

func (c *systemContext) CreateShader(shaderType gles.Enum) uint32 {
	return c.createShader(uint32(shaderType))
}

func (c *systemContext) ShaderSource(shader uint32, source string) {
	src := append([]byte(source), 0)
	ptr := &src[0]
	length := int32(len(source))
	c.shaderSource(shader, 1, &ptr, &length)
}

func (c *systemContext) CompileShader(shader uint32) {
	c.compileShader(shader)
}

func (c *systemContext) GetShaderi(shader uint32, pname gles.Enum) int32 {
	var v int32
	c.getShaderiv(shader, uint32(pname), &v)
	return v
}

func (c *systemContext) GetShaderInfoLog(shader uint32) string {
	length := c.GetShaderi(shader, gles.InfoLogLength)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	var written int32
	c.getShaderInfoLog(shader, length, &written, &buf[0])
	if written < 0 || int(written) > len(buf) {
		written = 0
	}
	return string(buf[:written])
}

func (c *systemContext) DeleteShader(shader uint32) {
	c.deleteShader(shader)
}

type systemLibrary struct {
	funcs *systemFunctionLibrary
	ctx   *systemContext

	closeOnce sync.Once
	closeErr  error
}

// openSystemLibrary binds the installed GLES2 driver via dynamic symbol
// resolution. A missing library, or a library lacking any of the entry points
// the context binds, yields a *LoadError.
func openSystemLibrary(path string) (Library, error) {
	name := path
	if name == "" {
		name = defaultLibraryName
	}

	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &LoadError{LibraryName: name, Err: err}
	}

	funcs := &systemFunctionLibrary{name: name, handle: handle, cache: make(map[string]Proc)}
	ctx := &systemContext{}
	for _, ep := range ctx.entryPoints() {
		if _, err := funcs.Proc(ep.symbol); err != nil {
			_ = purego.Dlclose(handle)
			return nil, &LoadError{LibraryName: name, Symbol: ep.symbol, Err: err}
		}
	}
	for _, ep := range ctx.entryPoints() {
		purego.RegisterLibFunc(ep.fn, handle, ep.symbol)
	}

	return &systemLibrary{funcs: funcs, ctx: ctx}, nil
}

func (l *systemLibrary) FunctionLibrary() FunctionLibrary { return l.funcs }
func (l *systemLibrary) Context() gles.Context            { return l.ctx }

func (l *systemLibrary) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = purego.Dlclose(l.funcs.handle)
	})
	return l.closeErr
}
