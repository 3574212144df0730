//go:build !(linux || darwin || freebsd)

package driver

import "fmt"

// Dynamic symbol resolution is only wired up for the unix-like platforms the
// conformance runner targets; elsewhere only the null driver is available.
func openSystemLibrary(path string) (Library, error) {
	return nil, fmt.Errorf("%w: system driver loading is not supported on this platform", ErrDriverUnavailable)
}
