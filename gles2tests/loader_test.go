package gles2tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShaderCaseFileYAML(t *testing.T) {
	data := []byte(`
cases:
  - name: simple
    description: a simple case
    vertexSource: "void main() {}"
  - name: from_archive
    fragmentFile: shaders/frag.glsl
    expect: compile_fail
`)
	defs, err := parseShaderCaseFile(data, "test.yaml")
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "simple", defs[0].Name)
	assert.Equal(t, "void main() {}", defs[0].VertexSource)
	assert.Equal(t, "from_archive", defs[1].Name)
	assert.Equal(t, "shaders/frag.glsl", defs[1].FragmentFile)
	assert.Equal(t, "compile_fail", defs[1].Expect)
}

func TestParseShaderCaseFileJSON(t *testing.T) {
	data := []byte(`{"cases": [{"name": "simple", "fragmentSource": "void main() {}"}]}`)
	defs, err := parseShaderCaseFile(data, "test.json")
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "simple", defs[0].Name)
}

func TestParseShaderCaseFileValidation(t *testing.T) {
	badFiles := []struct {
		desc string
		data string
	}{
		{"missing name", `{"cases": [{"vertexSource": "x"}]}`},
		{"no sources", `{"cases": [{"name": "x"}]}`},
		{"source and file", `{"cases": [{"name": "x", "vertexSource": "a", "vertexFile": "b"}]}`},
		{"bad expectation", `{"cases": [{"name": "x", "vertexSource": "a", "expect": "explode"}]}`},
	}
	for _, bad := range badFiles {
		t.Run(bad.desc, func(t *testing.T) {
			_, err := parseShaderCaseFile([]byte(bad.data), "bad.json")
			assert.Error(t, err)
		})
	}
}

func TestParseShaderCaseFileRejectsGarbage(t *testing.T) {
	_, err := parseShaderCaseFile([]byte("{{{not data"), "garbage.yaml")
	assert.Error(t, err)
}

func TestBuiltinDataFilesParse(t *testing.T) {
	entries, err := dataFilesRoot.ReadDir(builtinShaderDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := dataFilesRoot.ReadFile(builtinShaderDir + "/" + e.Name())
		require.NoError(t, err)
		defs, err := parseShaderCaseFile(data, e.Name())
		require.NoError(t, err, "builtin data file %s must parse", e.Name())
		assert.NotEmpty(t, defs)
	}
}
