// Package gles2tests contains the OpenGL ES 2.0 test battery the harness
// executes. The harness core never depends on this package; it only receives
// the case hierarchy built by BuildPackage. Cases talk to the driver purely
// through the gles.Context and driver.FunctionLibrary interfaces, so the same
// battery runs unchanged against the real and the null driver.
package gles2tests

import (
	"github.com/opengl-conformance/gles2-test-harness/framework"
	"github.com/opengl-conformance/gles2-test-harness/framework/archive"
	"github.com/opengl-conformance/gles2-test-harness/framework/gltest"
)

// PackageName is the root of every case path in this battery.
const PackageName = "dEQP-GLES2"

// BuildPackage constructs the full static case hierarchy. The traversal order
// is fixed by construction order here; nothing may reorder it at run time.
//
// The archive is consulted once, while building, for externally supplied
// shader case definitions; diag receives warnings about unusable data files.
func BuildPackage(arc archive.Archive, diag framework.Logger) *gltest.Group {
	if diag == nil {
		diag = framework.NullLogger()
	}
	root := gltest.NewGroup(PackageName)
	addInfoTests(root.AddGroup("info"))
	addCapabilityTests(root.AddGroup("capability"))
	addShaderTests(root.AddGroup("shaders"), arc, diag)
	return root
}
