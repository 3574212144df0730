// Package framework contains low-level infrastructure shared by the rest of
// the harness: the Logger abstraction used for diagnostic output and the
// capturing logger that accumulates per-case output.
//
// Everything that knows about OpenGL ES or about test cases lives in the
// subpackages (archive, gles, driver, gltest); this package is deliberately
// free of domain knowledge.
package framework
