// Package fs provides an artifacts.Loader which reads truffle build output
// (build/contracts/*.json) from the local filesystem.
package fs
