// Package gltest contains the test-run engine: the case hierarchy model, the
// wildcard case filter, the append-only result log, the console output
// contract, and the App state machine that drives one unit of work per
// Iterate call. It knows nothing about individual test content; the battery
// in gles2tests builds a case tree and hands it to an App.
package gltest
