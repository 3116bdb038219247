// Package metadata contains facilities for working with compiled contract artifacts.
// At the moment, it is mostly a 1:1 reflection of the json files truffle writes
// under build/contracts.
//
// Only the members consumers of the artifact registry need are modelled.  The
// ABI is kept as raw json, leaving its interpretation to contract binding code.
package metadata
