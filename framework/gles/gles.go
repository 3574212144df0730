// Package gles defines the slice of the OpenGL ES 2.0 API surface that the
// harness and its test battery call through, along with the enum constants
// those calls take. A driver variant satisfies the battery by implementing
// Context; the full native entry-point table is exposed separately through
// the driver package's FunctionLibrary.
package gles

// Enum is a GLenum value.
type Enum uint32

// String queries (glGetString).
const (
	Vendor                 Enum = 0x1F00
	Renderer               Enum = 0x1F01
	Version                Enum = 0x1F02
	Extensions             Enum = 0x1F03
	ShadingLanguageVersion Enum = 0x8B8C
)

// Integer state queries (glGetIntegerv).
const (
	MaxVertexAttribs             Enum = 0x8869
	MaxTextureSize               Enum = 0x0D33
	MaxCubeMapTextureSize        Enum = 0x851C
	MaxVertexUniformVectors      Enum = 0x8DFB
	MaxFragmentUniformVectors    Enum = 0x8DFD
	MaxVaryingVectors            Enum = 0x8DFC
	MaxTextureImageUnits         Enum = 0x8872
	MaxCombinedTextureImageUnits Enum = 0x8B4D
	MaxRenderbufferSize          Enum = 0x84E8
)

// Shader object constants.
const (
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
	CompileStatus  Enum = 0x8B81
	InfoLogLength  Enum = 0x8B84
)

// Error codes (glGetError).
const (
	NoError          Enum = 0
	InvalidEnum      Enum = 0x0500
	InvalidValue     Enum = 0x0501
	InvalidOperation Enum = 0x0502
	OutOfMemory      Enum = 0x0505
)

// Minimum values required by the OpenGL ES 2.0 specification for the
// implementation-defined limits the capability tests check.
var MinimumLimits = map[Enum]int32{
	MaxVertexAttribs:             8,
	MaxTextureSize:               64,
	MaxCubeMapTextureSize:        16,
	MaxVertexUniformVectors:      128,
	MaxFragmentUniformVectors:    16,
	MaxVaryingVectors:            8,
	MaxTextureImageUnits:         8,
	MaxCombinedTextureImageUnits: 8,
	MaxRenderbufferSize:          1,
}

// Context is the driver "interface object": the typed call surface the test
// battery uses. All call sites depend only on this interface, never on which
// concrete driver variant is behind it.
type Context interface {
	// GetString returns the string for one of the glGetString name enums,
	// or "" for an unrecognized name.
	GetString(name Enum) string

	// GetIntegerv fills out with the state identified by pname. Unrecognized
	// pnames leave out untouched and set an InvalidEnum error.
	GetIntegerv(pname Enum, out []int32)

	// GetError returns and clears the current error flag.
	GetError() Enum

	CreateShader(shaderType Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
}
