package driver

import "fmt"

// Kind selects which driver variant a platform produces.
type Kind string

const (
	// KindNull always binds the self-contained null driver.
	KindNull Kind = "null"
	// KindSystem binds the installed system driver and fails if it cannot
	// be loaded.
	KindSystem Kind = "system"
	// KindAuto tries the system driver first and falls back to the null
	// driver if loading fails.
	KindAuto Kind = "auto"
)

// ParseKind converts a command-line value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindNull, KindSystem, KindAuto:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown driver kind %q (want null, system, or auto)", s)
	}
}

// Options configures the platform factory.
type Options struct {
	Kind Kind

	// Logger receives diagnostics about driver selection. Nil means silent.
	Logger interface {
		Printf(message string, args ...interface{})
	}
}

type platform struct {
	opts Options
}

// NewPlatform returns the process's Platform. The variant each CreateLibrary
// call produces is fixed here, by configuration, so that no test code ever
// inspects which concrete driver it is running against.
func NewPlatform(opts Options) Platform {
	if opts.Kind == "" {
		opts.Kind = KindNull
	}
	return &platform{opts: opts}
}

func (p *platform) CreateLibrary(libraryType LibraryType, path string) (Library, error) {
	if libraryType != LibraryGLES2 {
		return nil, fmt.Errorf("%w: library type %s", ErrDriverUnavailable, libraryType)
	}
	switch p.opts.Kind {
	case KindNull:
		return newNullLibrary(), nil
	case KindSystem:
		return openSystemLibrary(path)
	case KindAuto:
		lib, err := openSystemLibrary(path)
		if err == nil {
			return lib, nil
		}
		if p.opts.Logger != nil {
			p.opts.Logger.Printf("system driver unavailable (%v); using null driver", err)
		}
		return newNullLibrary(), nil
	default:
		return nil, fmt.Errorf("%w: driver kind %q", ErrDriverUnavailable, p.opts.Kind)
	}
}
