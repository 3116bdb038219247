// Package artifacts resolves the compiled contract artifacts used by the
// Loopring v3 tests and deployment code.
//
// The set of artifacts is fixed.  New resolves each of them once against a
// Loader and exposes the results as fields of an Artifacts value.  Loaders
// may read truffle build output from a local directory, serve canned values
// in tests, etc.  See drivers/ for implementations.
package artifacts
