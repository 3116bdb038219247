package fs

import (
	"os"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

const (
	dontGoDeeper = true
	goDeeper     = false
)

// find lists every file under dir with the given base name, in lexical order
func find(dir, base string) ([]string, error) {
	var found []string

	err := fsWalk(dir, func(ospath string, e *godirwalk.Dirent) (bool, error) {
		if e.IsDir() {
			return goDeeper, nil
		}

		if e.Name() == base {
			found = append(found, ospath)
		}

		return dontGoDeeper, nil
	})

	return found, err
}

type skip struct {
	action godirwalk.ErrorAction
}

func (skip) Error() string {
	return "node is skipped"
}

// Callback to be invoked each time a fs entry is encountered.
// Returns a Boolean indicating whether the current fs entry should be a
// considered a terminal (leaf) node.  If true, any children will not be
// walked.  Any error will terminate a walk entirely.
type fsCallback func(ospath string, e *godirwalk.Dirent) (terminal bool, err error)

func fsWalk(dir string, f fsCallback) error {

	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "error walking directory %s", dir)
	}

	return godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(ospath string, dirent *godirwalk.Dirent) error {
			terminal, err := f(ospath, dirent)
			if err != nil {
				return errors.Wrap(err, "terminating walk due to error")
			}
			if terminal {
				return skip{godirwalk.SkipNode}
			}
			return nil
		},
		ErrorCallback: func(ospath string, err error) godirwalk.ErrorAction {
			s, skip := errors.Cause(err).(skip)
			if skip {
				return s.action
			}

			return godirwalk.Halt
		},
	},
	)
}
