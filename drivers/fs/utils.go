package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/loopring/artifacts/metadata"
	"github.com/pkg/errors"
)

// AtomicPrefix is a file prefix for temporary files that are created during
// AtomicWrite
const AtomicPrefix = ".artifacts.atomic."

// ReadArtifact reads and parses the artifact file at the given path
func ReadArtifact(path string) (_ *metadata.Artifact, err error) {
	artifact := metadata.Artifact{}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open artifact at %s", path)
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing file at %s", path)
		}
	}()

	err = metadata.Parse(file, &artifact)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse artifact at %s", path)
	}

	return &artifact, nil
}

// ManagedWrite encapsulates an io.WriteCloser such that the write can be
// rolled back upon error.
type ManagedWrite struct {
	io.WriteCloser
	closeFunc    func() error
	rollbackFunc func() error
	closed       bool
}

// Close frees up any resources and performs the necessary actions to
// commit the write.
func (w *ManagedWrite) Close() error {
	return w.closeWith(w.closeFunc)
}

// Rollback attempts to undo any tangible effects of an incomplete/errored write.
func (w *ManagedWrite) Rollback() error {
	return w.closeWith(w.rollbackFunc)
}

func (w *ManagedWrite) closeWith(f func() error) error {
	if w.closed {
		return nil
	}
	err := w.WriteCloser.Close()
	if err != nil {
		return err
	}
	w.closed = true

	if f != nil {
		return f()
	}

	return nil
}

// AtomicWrite creates a temporary file which is opened for write (only),
// in the same directory as the specified path.  Once written and closed,
// it atomically renames the temp file to match the given path.
//
// Note, Close() may fail.  If it does, it is up to the caller to determine the
// appropriate response (e.g. Rollback(), or log it and manually inspect)
func AtomicWrite(path string) (*ManagedWrite, error) {

	tname := filepath.Join(filepath.Dir(path), AtomicPrefix+filepath.Base(path))
	tfile, err := os.OpenFile(tname, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0664)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create temporary file %s", tname)
	}

	return &ManagedWrite{
		WriteCloser: tfile,
		closeFunc: func() error {
			err := os.Rename(tname, path)
			return errors.Wrapf(err, "could not rename %s to %s", tname, path)
		},
		rollbackFunc: func() error {
			return os.Remove(tname)
		},
	}, nil
}
