package gltest

import (
	"fmt"

	"github.com/opengl-conformance/gles2-test-harness/framework"
	"github.com/opengl-conformance/gles2-test-harness/framework/archive"
	"github.com/opengl-conformance/gles2-test-harness/framework/driver"
	"github.com/opengl-conformance/gles2-test-harness/framework/gles"
)

// Context is handed to each executing case. Archive and Config-derived fields
// are read-only for the whole run; Log captures the case's diagnostic output
// so the engine can fold it into the result record.
type Context struct {
	Archive archive.Archive
	Library driver.Library
	GL      gles.Context
	Surface SurfaceConfig
	Log     framework.Logger
}

// Case is a single named conformance test unit.
type Case struct {
	Name string
	Run  func(*Context) Result
}

// Group is an interior node of the case hierarchy. Children keep their
// insertion order, which fixes the traversal order of the whole run.
type Group struct {
	name     string
	children []node
}

type node interface {
	nodeName() string
	flatten(prefix string, out *[]plannedCase)
}

// NewGroup creates a hierarchy root (or any standalone group).
func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) nodeName() string { return g.name }

// AddGroup creates a child group and returns it for population.
func (g *Group) AddGroup(name string) *Group {
	child := NewGroup(name)
	g.children = append(g.children, child)
	return child
}

// AddCase appends a leaf case to the group.
func (g *Group) AddCase(name string, run func(*Context) Result) {
	g.children = append(g.children, &Case{Name: name, Run: run})
}

func (g *Group) flatten(prefix string, out *[]plannedCase) {
	path := g.name
	if prefix != "" {
		path = prefix + "." + g.name
	}
	for _, c := range g.children {
		c.flatten(path, out)
	}
}

func (c *Case) nodeName() string { return c.Name }

func (c *Case) flatten(prefix string, out *[]plannedCase) {
	path := c.Name
	if prefix != "" {
		path = prefix + "." + c.Name
	}
	*out = append(*out, plannedCase{path: path, run: c.Run})
}

// CasePaths returns the full dotted path of every case under g, in the fixed
// traversal order a run would use.
func (g *Group) CasePaths() []string {
	var plan []plannedCase
	g.flatten("", &plan)
	paths := make([]string, 0, len(plan))
	for _, c := range plan {
		paths = append(paths, c.path)
	}
	return paths
}

// plannedCase is one leaf with its full dotted path, in traversal order.
type plannedCase struct {
	path string
	run  func(*Context) Result
}

// flattenTree produces the deterministic execution plan for a hierarchy and
// rejects duplicate case paths, which would make log records ambiguous.
func flattenTree(root *Group) ([]plannedCase, error) {
	var plan []plannedCase
	root.flatten("", &plan)
	seen := make(map[string]struct{}, len(plan))
	for _, c := range plan {
		if _, dup := seen[c.path]; dup {
			return nil, fmt.Errorf("duplicate case path %q", c.path)
		}
		seen[c.path] = struct{}{}
	}
	return plan, nil
}
