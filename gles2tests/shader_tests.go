package gles2tests

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/opengl-conformance/gles2-test-harness/framework"
	"github.com/opengl-conformance/gles2-test-harness/framework/archive"
	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
	"github.com/opengl-conformance/gles2-test-harness/framework/gltest"
)

// archiveShaderDir is where an external archive may supply additional shader
// case definition files (.json or .yaml). The builtin embedded set always
// runs; archive-supplied cases are appended under shaders.archive.
const archiveShaderDir = "shaders"

func addShaderTests(g *gltest.Group, arc archive.Archive, diag framework.Logger) {
	builtin := g.AddGroup("builtin")
	addShaderCasesFromFS(builtin, diag)

	if arc == nil {
		return
	}
	names, err := arc.List(archiveShaderDir)
	if err != nil {
		// No archive shader data is fine; the builtin set still runs.
		diag.Printf("no external shader cases: %v", err)
		return
	}
	external := g.AddGroup("archive")
	for _, name := range names {
		if !isCaseFileName(name) {
			continue
		}
		path := archiveShaderDir + "/" + name
		data, err := arc.ReadFile(path)
		if err != nil {
			addBrokenCaseFile(external, name, err)
			continue
		}
		defs, err := parseShaderCaseFile(data, path)
		if err != nil {
			addBrokenCaseFile(external, name, err)
			continue
		}
		for _, def := range defs {
			def := def
			external.AddCase(def.Name, func(ctx *gltest.Context) gltest.Result {
				return runShaderCase(ctx, def)
			})
		}
	}
}

func addShaderCasesFromFS(g *gltest.Group, diag framework.Logger) {
	entries, err := dataFilesRoot.ReadDir(builtinShaderDir)
	if err != nil {
		diag.Printf("builtin shader data is unavailable: %v", err)
		return
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && isCaseFileName(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	for _, name := range names {
		data, err := dataFilesRoot.ReadFile(builtinShaderDir + "/" + name)
		if err != nil {
			addBrokenCaseFile(g, name, err)
			continue
		}
		defs, err := parseShaderCaseFile(data, name)
		if err != nil {
			addBrokenCaseFile(g, name, err)
			continue
		}
		for _, def := range defs {
			def := def
			g.AddCase(def.Name, func(ctx *gltest.Context) gltest.Result {
				return runShaderCase(ctx, def)
			})
		}
	}
}

// addBrokenCaseFile registers a placeholder case for an unusable definition
// file. The problem surfaces as one ResourceError record instead of silently
// shrinking the hierarchy or aborting the run.
func addBrokenCaseFile(g *gltest.Group, fileName string, err error) {
	caseName := strings.TrimSuffix(strings.TrimSuffix(fileName, ".yaml"), ".json")
	failure := err
	g.AddCase(caseName, func(*gltest.Context) gltest.Result {
		return gltest.ResourceErrorf("unusable shader case file %q: %v", fileName, failure)
	})
}

func isCaseFileName(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".json")
}

func runShaderCase(ctx *gltest.Context, def shaderCaseDef) gltest.Result {
	expectFailure := def.Expect == "compile_fail"

	stages := []struct {
		kind   gles.Enum
		label  string
		source string
		file   string
	}{
		{gles.VertexShader, "vertex", def.VertexSource, def.VertexFile},
		{gles.FragmentShader, "fragment", def.FragmentSource, def.FragmentFile},
	}

	anyFailed := false
	for _, stage := range stages {
		source := stage.source
		if source == "" && stage.file != "" {
			data, err := ctx.Archive.ReadFile(stage.file)
			if err != nil {
				return gltest.ResourceErrorf("cannot read %s shader %q: %v", stage.label, stage.file, err)
			}
			source = string(data)
		}
		if source == "" {
			continue
		}

		compiled, infoLog := compileShader(ctx.GL, stage.kind, source)
		ctx.Log.Printf("%s shader compile: ok=%v", stage.label, compiled)
		if !compiled {
			if !expectFailure {
				return gltest.Failf("%s shader failed to compile: %s", stage.label, infoLog)
			}
			anyFailed = true
		}
	}

	if expectFailure && !anyFailed {
		// A compiler that accepts known-invalid input is suspicious but not
		// wrong in a way this harness can prove; flag it without failing.
		return gltest.QualityWarningf("compiler accepted a shader expected to be rejected")
	}
	return gltest.Passf("%s", def.Description)
}

func compileShader(gl gles.Context, kind gles.Enum, source string) (bool, string) {
	shader := gl.CreateShader(kind)
	if shader == 0 {
		return false, "glCreateShader returned 0"
	}
	defer gl.DeleteShader(shader)
	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)
	if gl.GetShaderi(shader, gles.CompileStatus) == 0 {
		return false, gl.GetShaderInfoLog(shader)
	}
	return true, ""
}
