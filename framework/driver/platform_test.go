package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"null", "system", "auto"} {
		k, err := ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, Kind(valid), k)
	}
	_, err := ParseKind("hardware")
	assert.Error(t, err)
}

func TestNewPlatformDefaultsToNull(t *testing.T) {
	platform := NewPlatform(Options{})
	lib, err := platform.CreateLibrary(LibraryGLES2, "")
	require.NoError(t, err)
	defer lib.Close() //nolint:errcheck
	assert.NotNil(t, lib.FunctionLibrary())
	assert.NotNil(t, lib.Context())
}

func TestCreateLibraryRejectsUnknownFamily(t *testing.T) {
	platform := NewPlatform(Options{Kind: KindNull})
	_, err := platform.CreateLibrary(LibraryType(99), "")
	assert.ErrorIs(t, err, ErrDriverUnavailable)
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(message string, args ...interface{}) {
	l.messages = append(l.messages, message)
}

func TestAutoFallsBackToNullWhenSystemDriverIsMissing(t *testing.T) {
	logger := &recordingLogger{}
	platform := NewPlatform(Options{Kind: KindAuto, Logger: logger})

	lib, err := platform.CreateLibrary(LibraryGLES2, "/definitely/not/a/driver.so")
	require.NoError(t, err)
	defer lib.Close() //nolint:errcheck

	// The fallback must satisfy the same contract as the real thing.
	assert.NotNil(t, lib.FunctionLibrary())
	assert.NotNil(t, lib.Context())
	assert.NotEmpty(t, logger.messages, "fallback should be reported")
}

func TestSystemKindFailsLoudlyWhenDriverIsMissing(t *testing.T) {
	platform := NewPlatform(Options{Kind: KindSystem})
	_, err := platform.CreateLibrary(LibraryGLES2, "/definitely/not/a/driver.so")
	require.Error(t, err)
}
