package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// BuildDir is where truffle writes artifacts, relative to the project
const BuildDir = "build/contracts"

var projectMarkers = []string{"truffle-config.js", "truffle.js"}

// LocateRoot attempts find the build directory of the first truffle project
// containing the given location, or any of its parent directories.  The
// build directory itself need not exist yet.
func LocateRoot(loc string) (string, error) {

	addr, err := filepath.Abs(loc)
	if err != nil {
		return "", errors.Wrapf(err, "could not calculate absolute path of %s", loc)
	}

	project, err := crawlForProject(addr)
	if err != nil {
		return "", errors.Wrap(err, "error finding build directory")
	}

	return filepath.Join(project, filepath.FromSlash(BuildDir)), nil
}

// Crawl up a directory hierarchy until we reach a truffle project.
// Returns an error if none are found.
func crawlForProject(addr string) (string, error) {

	found, err := isProject(addr)
	if err != nil {
		return "", errors.Wrapf(err, "error detecting truffle project")
	}

	if found {
		return addr, nil
	}

	parent := filepath.Dir(addr)
	if parent == addr {
		return "", fmt.Errorf("no truffle project found crawling up to /")
	}

	return crawlForProject(parent)
}

// Detect if this is a truffle project directory.
// returns an error if the given path is not found or otherwise
// there is a problem accessing it.
func isProject(path string) (bool, error) {

	dir, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	if !dir.IsDir() {
		return false, nil
	}

	for _, marker := range projectMarkers {
		f, err := os.Stat(filepath.Join(path, marker))

		// We expect a "file not found" error if this isn't a project,
		// Anything else (e.g. "permission denied"), we should truly return as an error
		if err != nil && !os.IsNotExist(err) {
			return false, errors.Wrapf(err, "error detecting truffle config in %s", path)
		}

		if err == nil && f.Mode().IsRegular() {
			return true, nil
		}
	}

	return false, nil
}
