package gles2tests

import (
	"strings"

	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
	"github.com/opengl-conformance/gles2-test-harness/framework/gltest"
)

// The info cases mirror the classic dEQP-GLES2.info group: query one piece of
// implementation information, log it, and pass as long as the query itself
// succeeded. Content checks stay loose on purpose; these cases validate the
// query mechanism, not the marketing strings.

func addInfoTests(g *gltest.Group) {
	g.AddCase("vendor", func(ctx *gltest.Context) gltest.Result {
		return queryString(ctx, gles.Vendor, "VENDOR", false)
	})
	g.AddCase("renderer", func(ctx *gltest.Context) gltest.Result {
		return queryString(ctx, gles.Renderer, "RENDERER", false)
	})
	g.AddCase("version", func(ctx *gltest.Context) gltest.Result {
		result := queryString(ctx, gles.Version, "VERSION", false)
		if result.Outcome != gltest.Pass {
			return result
		}
		version := ctx.GL.GetString(gles.Version)
		if !strings.Contains(version, "OpenGL ES") {
			return gltest.Failf("version string %q does not identify an OpenGL ES implementation", version)
		}
		return result
	})
	g.AddCase("shading_language_version", func(ctx *gltest.Context) gltest.Result {
		return queryString(ctx, gles.ShadingLanguageVersion, "SHADING_LANGUAGE_VERSION", false)
	})
	g.AddCase("extensions", func(ctx *gltest.Context) gltest.Result {
		// An empty extension string is legal; only a query error fails.
		return queryString(ctx, gles.Extensions, "EXTENSIONS", true)
	})
}

func queryString(ctx *gltest.Context, name gles.Enum, label string, emptyOK bool) gltest.Result {
	value := ctx.GL.GetString(name)
	if err := ctx.GL.GetError(); err != gles.NoError {
		return gltest.Failf("glGetString(GL_%s) set error 0x%04x", label, uint32(err))
	}
	if value == "" && !emptyOK {
		return gltest.Failf("glGetString(GL_%s) returned an empty string", label)
	}
	ctx.Log.Printf("GL_%s: %s", label, value)
	return gltest.Passf("GL_%s query succeeded", label)
}
