package gltest

import "fmt"

// RunMode is the top-level behavior of the harness.
type RunMode int

const (
	// RunModeExecute runs matching cases and records their outcomes.
	RunModeExecute RunMode = iota
	// RunModeCaseList enumerates registered cases into the log without
	// executing them.
	RunModeCaseList
)

// ParseRunMode accepts the command-line run mode values.
func ParseRunMode(s string) (RunMode, error) {
	switch s {
	case "", "normal":
		return RunModeExecute, nil
	case "xml-caselist":
		return RunModeCaseList, nil
	default:
		return 0, fmt.Errorf("unknown run mode %q (want normal or xml-caselist)", s)
	}
}

// SurfaceType is the render target kind the configuration requests.
type SurfaceType string

const (
	SurfaceWindow SurfaceType = "window"
	SurfaceFBO    SurfaceType = "fbo"
	SurfacePixmap SurfaceType = "pixmap"
)

// ParseSurfaceType accepts the command-line surface type values.
func ParseSurfaceType(s string) (SurfaceType, error) {
	switch SurfaceType(s) {
	case SurfaceWindow, SurfaceFBO, SurfacePixmap:
		return SurfaceType(s), nil
	default:
		return "", fmt.Errorf("unknown surface type %q (want fbo, window, or pixmap)", s)
	}
}

// SurfaceConfig carries the requested render surface parameters.
type SurfaceConfig struct {
	Type   SurfaceType
	Width  int
	Height int
}

// Config is the immutable per-run configuration. It is constructed once by
// the command line parser and shared by read-only reference afterwards.
type Config struct {
	// CaseFilter selects which cases run; empty means all.
	CaseFilter CasePatternList
	// RunMode switches between execution and case-list generation.
	RunMode RunMode
	// CaseListFilter applies CaseFilter in case-list mode too. Off by
	// default: historically list generation enumerates unconditionally.
	CaseListFilter bool
	// LogFile is the test log destination path.
	LogFile string
	// Quiet suppresses console echo without affecting the log file.
	Quiet bool
	// ArchiveDir is the root of the test input data tree.
	ArchiveDir string
	// GLLibrary optionally overrides the shared-library path the driver
	// platform binds; empty means the platform default.
	GLLibrary string
	// Surface holds the requested render target parameters.
	Surface SurfaceConfig
}

// Validate checks the constraints the parser cannot express.
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("log file path must not be empty")
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size %dx%d is invalid; dimensions must be positive",
			c.Surface.Width, c.Surface.Height)
	}
	return nil
}
