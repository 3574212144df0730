package gles2tests

import (
	"embed"
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

//go:embed data-files
var dataFilesRoot embed.FS

const builtinShaderDir = "data-files/shaders"

// shaderCaseFile is one shader case definition file. Files may be JSON or
// YAML; both parse into the same structure.
type shaderCaseFile struct {
	Cases []shaderCaseDef `json:"cases" yaml:"cases"`
}

// shaderCaseDef describes one shader compilation case. Sources are either
// inline or referenced by archive path; exactly one of the two must be set
// per shader stage.
type shaderCaseDef struct {
	Name           string `json:"name" yaml:"name"`
	Description    string `json:"description" yaml:"description"`
	VertexSource   string `json:"vertexSource" yaml:"vertexSource"`
	VertexFile     string `json:"vertexFile" yaml:"vertexFile"`
	FragmentSource string `json:"fragmentSource" yaml:"fragmentSource"`
	FragmentFile   string `json:"fragmentFile" yaml:"fragmentFile"`
	// Expect is "pass" (default) or "compile_fail".
	Expect string `json:"expect" yaml:"expect"`
}

func (d shaderCaseDef) validate() error {
	if d.Name == "" {
		return fmt.Errorf("shader case has no name")
	}
	if d.VertexSource != "" && d.VertexFile != "" {
		return fmt.Errorf("shader case %q: vertexSource and vertexFile are mutually exclusive", d.Name)
	}
	if d.FragmentSource != "" && d.FragmentFile != "" {
		return fmt.Errorf("shader case %q: fragmentSource and fragmentFile are mutually exclusive", d.Name)
	}
	if d.VertexSource == "" && d.VertexFile == "" && d.FragmentSource == "" && d.FragmentFile == "" {
		return fmt.Errorf("shader case %q: no shader sources", d.Name)
	}
	switch d.Expect {
	case "", "pass", "compile_fail":
		return nil
	default:
		return fmt.Errorf("shader case %q: unknown expectation %q", d.Name, d.Expect)
	}
}

// parseJSONOrYAML parses data as JSON if possible, otherwise as YAML
// normalized through JSON, so both formats deserialize identically.
func parseJSONOrYAML(data []byte, target interface{}) error {
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}
	var rawStructure interface{}
	if err := yaml.Unmarshal(data, &rawStructure); err != nil {
		return err
	}
	normalized, err := normalizeParsedYAMLForJSON(rawStructure)
	if err != nil {
		return err
	}
	jsonData, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonData, target)
}

func normalizeParsedYAMLForJSON(data interface{}) (interface{}, error) {
	switch data := data.(type) {
	case []interface{}:
		arrayOut := make([]interface{}, 0, len(data))
		for _, v := range data {
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			arrayOut = append(arrayOut, v1)
		}
		return arrayOut, nil
	case map[string]interface{}:
		mapOut := make(map[string]interface{}, len(data))
		for k, v := range data {
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			mapOut[k] = v1
		}
		return mapOut, nil
	case map[interface{}]interface{}:
		mapOut := make(map[string]interface{}, len(data))
		for k, v := range data {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v is not a string", k)
			}
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			mapOut[key] = v1
		}
		return mapOut, nil
	default:
		return data, nil
	}
}

func parseShaderCaseFile(data []byte, sourceName string) ([]shaderCaseDef, error) {
	var file shaderCaseFile
	if err := parseJSONOrYAML(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", sourceName, err)
	}
	for _, def := range file.Cases {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("in %q: %w", sourceName, err)
		}
	}
	return file.Cases, nil
}
