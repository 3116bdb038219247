package fspath

import (
	"path"
	"strings"
)

// Generator generates a relative, solidus delimited file path
// from a given logical artifact name.  The resulting paths are
// relative to a build directory, e.g. build/contracts
type Generator interface {
	Generate(string) string
}

// GeneratorFunc is a function that can be used to satisfy the Generator interface
type GeneratorFunc func(string) string

// Generate a path from a given name
func (g GeneratorFunc) Generate(name string) string {
	return g(name)
}

// Flat maps a name to a file named after its last path segment, which is how
// truffle lays out build/contracts, e.g. impl/Exchange -> Exchange.json
var Flat = GeneratorFunc(func(name string) string {
	return path.Base(clean(name)) + ".json"
})

// Nested keeps the directory structure of the name,
// e.g. test/tokens/LRC -> test/tokens/LRC.json
var Nested = GeneratorFunc(func(name string) string {
	return clean(name) + ".json"
})

func clean(name string) string {
	return strings.TrimLeft(path.Clean("/"+name), "/")
}
