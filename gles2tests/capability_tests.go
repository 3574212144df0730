package gles2tests

import (
	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
	"github.com/opengl-conformance/gles2-test-harness/framework/gltest"
)

// limitChecks is deliberately an ordered slice, not a map: case registration
// order fixes the run order.
var limitChecks = []struct {
	caseName string
	pname    gles.Enum
	label    string
}{
	{"max_vertex_attribs", gles.MaxVertexAttribs, "GL_MAX_VERTEX_ATTRIBS"},
	{"max_texture_size", gles.MaxTextureSize, "GL_MAX_TEXTURE_SIZE"},
	{"max_cube_map_texture_size", gles.MaxCubeMapTextureSize, "GL_MAX_CUBE_MAP_TEXTURE_SIZE"},
	{"max_vertex_uniform_vectors", gles.MaxVertexUniformVectors, "GL_MAX_VERTEX_UNIFORM_VECTORS"},
	{"max_fragment_uniform_vectors", gles.MaxFragmentUniformVectors, "GL_MAX_FRAGMENT_UNIFORM_VECTORS"},
	{"max_varying_vectors", gles.MaxVaryingVectors, "GL_MAX_VARYING_VECTORS"},
	{"max_texture_image_units", gles.MaxTextureImageUnits, "GL_MAX_TEXTURE_IMAGE_UNITS"},
	{"max_combined_texture_image_units", gles.MaxCombinedTextureImageUnits, "GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS"},
	{"max_renderbuffer_size", gles.MaxRenderbufferSize, "GL_MAX_RENDERBUFFER_SIZE"},
}

func addCapabilityTests(g *gltest.Group) {
	limits := g.AddGroup("limits")
	for _, check := range limitChecks {
		check := check
		limits.AddCase(check.caseName, func(ctx *gltest.Context) gltest.Result {
			return checkLimit(ctx, check.pname, check.label)
		})
	}

	g.AddCase("entry_points", func(ctx *gltest.Context) gltest.Result {
		// The polymorphism contract: every driver variant must expose a
		// usable function library for the core entry points.
		funcs := ctx.Library.FunctionLibrary()
		if funcs == nil {
			return gltest.Failf("driver returned a nil function library")
		}
		for _, name := range []string{"glGetString", "glGetIntegerv", "glGetError"} {
			proc, err := funcs.Proc(name)
			if err != nil {
				return gltest.Failf("required entry point %s did not resolve: %v", name, err)
			}
			if proc == 0 {
				return gltest.Failf("entry point %s resolved to a zero handle", name)
			}
		}
		return gltest.Passf("core entry points resolved")
	})
}

func checkLimit(ctx *gltest.Context, pname gles.Enum, label string) gltest.Result {
	value := []int32{0}
	ctx.GL.GetIntegerv(pname, value)
	if err := ctx.GL.GetError(); err == gles.InvalidEnum {
		return gltest.NotSupportedf("%s is not recognized by this driver", label)
	} else if err != gles.NoError {
		return gltest.Failf("glGetIntegerv(%s) set error 0x%04x", label, uint32(err))
	}
	min := gles.MinimumLimits[pname]
	ctx.Log.Printf("%s = %d (minimum %d)", label, value[0], min)
	if value[0] < min {
		return gltest.Failf("%s is %d, below the required minimum %d", label, value[0], min)
	}
	result := gltest.Passf("%s meets the required minimum", label)
	result.Metrics = []gltest.Metric{{Name: label, Value: float64(value[0])}}
	return result
}
