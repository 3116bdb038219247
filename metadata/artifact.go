package metadata

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Extension is the file extension of a serialized artifact
const Extension = ".json"

// Artifact describes a compiled contract, as written by truffle into build/contracts/<name>.json
type Artifact struct {
	ContractName     string             `json:"contractName"`
	ABI              json.RawMessage    `json:"abi"`
	Bytecode         string             `json:"bytecode"`
	DeployedBytecode string             `json:"deployedBytecode"`
	SourcePath       string             `json:"sourcePath"`
	Compiler         Compiler           `json:"compiler"`
	Networks         map[string]Network `json:"networks"`
	SchemaVersion    string             `json:"schemaVersion"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// Compiler identifies the compiler an artifact was built with
type Compiler struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Network records a deployment of an artifact to a given network id
type Network struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash"`
}

// Parse parses a byte stream into artifact metadata
func Parse(r io.Reader, a *Artifact) error {

	err := json.NewDecoder(r).Decode(a)
	if err != nil {
		return errors.Wrap(err, "Could not decode json artifact")
	}
	return nil
}

// Serialize writes the contents of the artifact to json
func (a *Artifact) Serialize(w io.Writer) error {
	return json.NewEncoder(w).Encode(a)
}

// BytecodeSize is the number of bytes encoded by the (hex) creation bytecode.
// Unlinked library placeholders count as the 20 byte addresses they stand for.
func (a *Artifact) BytecodeSize() int {
	return len(strings.TrimPrefix(a.Bytecode, "0x")) / 2
}

// Address returns the address the artifact was deployed at on the given network, if any
func (a *Artifact) Address(network string) (string, bool) {
	n, ok := a.Networks[network]
	if !ok || n.Address == "" {
		return "", false
	}
	return n.Address, true
}
