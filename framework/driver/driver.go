// Package driver defines the Platform/Library abstraction that binds the
// harness to a native OpenGL ES implementation. Two interchangeable variants
// exist: a real driver that resolves entry points from an installed system
// library, and a null driver that satisfies the same contract with benign
// defaults and no hardware access. Callers hold only the interfaces; which
// variant they received is decided once, by the platform factory.
package driver

import (
	"errors"
	"fmt"

	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
)

// LibraryType identifies which API family a Library should bind.
type LibraryType int

const (
	// LibraryGLES2 is an OpenGL ES 2.0 client library.
	LibraryGLES2 LibraryType = iota
)

func (t LibraryType) String() string {
	switch t {
	case LibraryGLES2:
		return "gles2"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Proc is an opaque handle to one native entry point. For the real driver it
// is the symbol address; for the null driver it is a synthetic but stable
// nonzero value. Callers must treat it as opaque.
type Proc uintptr

// ErrDriverUnavailable is returned by a Platform that cannot instantiate the
// requested library family at all, for example when the real driver is not
// installed and no null fallback was configured.
var ErrDriverUnavailable = errors.New("requested driver is not available")

// ErrProcNotFound is wrapped by FunctionLibrary.Proc for unknown entry points.
var ErrProcNotFound = errors.New("entry point not found")

// LoadError reports a failure to bind the real system driver: either the
// shared library itself or one of the required entry points was missing.
type LoadError struct {
	LibraryName string
	Symbol      string
	Err         error
}

func (e *LoadError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("loading %s: symbol %q: %v", e.LibraryName, e.Symbol, e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.LibraryName, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FunctionLibrary is the native API-function-lookup surface. Every Library
// variant returns a usable FunctionLibrary, including the null one, so that
// no call site has to branch on which variant it received.
type FunctionLibrary interface {
	// Proc returns the entry point registered under name, or an error
	// wrapping ErrProcNotFound.
	Proc(name string) (Proc, error)

	// Contains reports whether the named entry point can be resolved.
	Contains(name string) bool
}

// Library is one bound API client library. The caller that obtained it from a
// Platform owns it exclusively and must Close it when done.
type Library interface {
	// FunctionLibrary returns the entry-point lookup table. Never nil.
	FunctionLibrary() FunctionLibrary

	// Context returns the typed GLES2 call surface for this library.
	Context() gles.Context

	// Close releases whatever the library holds. Safe to call once.
	Close() error
}

// Platform creates Library instances for the API families it supports. The
// process obtains exactly one Platform at startup and passes it down by
// reference; there is no hidden global.
type Platform interface {
	// CreateLibrary binds the given library family. path optionally
	// overrides the default shared-library name for the real variant and is
	// ignored by the null variant. The returned Library is owned by the
	// caller.
	CreateLibrary(libraryType LibraryType, path string) (Library, error)
}
