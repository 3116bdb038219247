package fs

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/loopring/artifacts"
	"github.com/loopring/artifacts/fspath"
	"github.com/loopring/artifacts/metadata"
	"github.com/pkg/errors"
)

// Driver loads compiled contract artifacts from a build directory
type Driver struct {
	cfg Config
}

// Config encapsulates a filesystem artifact driver config.
//
// The path function is optional; the flat truffle layout is assumed if none
// is given.  If an artifact is not at the path it generates, the driver
// performs a brute force search through the build directory for a file named
// after the last segment of the artifact name.
type Config struct {
	Root     string           // build directory, e.g. build/contracts
	PathFunc fspath.Generator // artifact file paths based on logical name
}

// NewDriver initializes a new filesystem artifact driver reading from
// the given build directory.
func NewDriver(cfg Config) (*Driver, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("no build directory given")
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not calculate absolute path of %s", cfg.Root)
	}

	dir, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open build directory")
	}

	if !dir.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	cfg.Root = root
	if cfg.PathFunc == nil {
		cfg.PathFunc = fspath.Flat
	}

	return &Driver{cfg: cfg}, nil
}

// Resolve reads and parses the artifact with the given logical name.
// The resulting handle is a *metadata.Artifact.
func (d *Driver) Resolve(name string) (artifacts.Handle, error) {
	loc, err := d.locate(name)
	if err != nil {
		return nil, err
	}

	a, err := ReadArtifact(loc)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", name)
	}

	return a, nil
}

// Find the artifact file for the given name
func (d *Driver) locate(name string) (string, error) {

	// First, the easy way.  See if the path function points to a file.

	loc := filepath.Join(d.cfg.Root, filepath.FromSlash(d.cfg.PathFunc.Generate(name)))

	f, err := os.Stat(loc)
	if err != nil && !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "error looking up %s at %s", name, loc)
	}

	if err == nil && f.Mode().IsRegular() {
		return loc, nil
	}

	// The "hard" way.  Brute force look for a matching file name

	matches, err := find(d.cfg.Root, path.Base(name)+metadata.Extension)
	if err != nil {
		return "", errors.Wrapf(err, "could not search for %s", name)
	}

	switch len(matches) {
	case 0:
		return "", errors.Wrapf(artifacts.ErrNotFound, "no artifact for %s in %s", name, d.cfg.Root)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s is ambiguous, found %s", name, strings.Join(matches, ", "))
	}
}
