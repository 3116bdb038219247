package artifacts

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Handle is an opaque, loadable artifact as returned by a Loader.
// The registry never inspects it.
type Handle interface{}

// Loader resolves a logical artifact name (e.g. impl/Exchange) into a Handle.
type Loader interface {
	Resolve(name string) (Handle, error)
}

// LoaderFunc is a function that can be used to satisfy the Loader interface
type LoaderFunc func(name string) (Handle, error)

// Resolve the given logical name
func (f LoaderFunc) Resolve(name string) (Handle, error) {
	return f(name)
}

// Name pairs an Artifacts field with the logical name it is resolved from.
type Name struct {
	Field string
	Path  string
}

// Artifacts holds one resolved handle per known artifact.  Fields are set by
// New, and must be treated as read only afterwards.
type Artifacts struct {
	Exchange         Handle
	ExchangeHelper   Handle
	TokenRegistry    Handle
	OperatorRegistry Handle
	BlockVerifier    Handle
	DummyToken       Handle
	LRCToken         Handle
	GTOToken         Handle
	RDNToken         Handle
	REPToken         Handle
	WETHToken        Handle
	INDAToken        Handle
	INDBToken        Handle
	TESTToken        Handle
}

type slot struct {
	Name
	field func(*Artifacts) *Handle
}

// Resolution order.  Tests run against mock loaders depend on it.
var slots = [...]slot{
	{Name{"Exchange", "impl/Exchange"}, func(a *Artifacts) *Handle { return &a.Exchange }},
	{Name{"ExchangeHelper", "impl/ExchangeHelper"}, func(a *Artifacts) *Handle { return &a.ExchangeHelper }},
	{Name{"TokenRegistry", "impl/TokenRegistry"}, func(a *Artifacts) *Handle { return &a.TokenRegistry }},
	{Name{"OperatorRegistry", "impl/OperatorRegistry"}, func(a *Artifacts) *Handle { return &a.OperatorRegistry }},
	{Name{"BlockVerifier", "impl/BlockVerifier"}, func(a *Artifacts) *Handle { return &a.BlockVerifier }},
	{Name{"DummyToken", "test/DummyToken"}, func(a *Artifacts) *Handle { return &a.DummyToken }},
	{Name{"LRCToken", "test/tokens/LRC"}, func(a *Artifacts) *Handle { return &a.LRCToken }},
	{Name{"GTOToken", "test/tokens/GTO"}, func(a *Artifacts) *Handle { return &a.GTOToken }},
	{Name{"RDNToken", "test/tokens/RDN"}, func(a *Artifacts) *Handle { return &a.RDNToken }},
	{Name{"REPToken", "test/tokens/REP"}, func(a *Artifacts) *Handle { return &a.REPToken }},
	{Name{"WETHToken", "test/tokens/WETH"}, func(a *Artifacts) *Handle { return &a.WETHToken }},
	{Name{"INDAToken", "test/tokens/INDA"}, func(a *Artifacts) *Handle { return &a.INDAToken }},
	{Name{"INDBToken", "test/tokens/INDB"}, func(a *Artifacts) *Handle { return &a.INDBToken }},
	{Name{"TESTToken", "test/tokens/TEST"}, func(a *Artifacts) *Handle { return &a.TESTToken }},
}

// Names lists every known artifact, in resolution order.
func Names() []Name {
	names := make([]Name, len(slots))
	for i, s := range slots {
		names[i] = s.Name
	}
	return names
}

// New resolves every known artifact using the given loader, one at a time and
// in the order given by Names.  The first failure aborts construction; no
// partially populated Artifacts is ever returned.
func New(loader Loader) (*Artifacts, error) {
	if loader == nil {
		return nil, fmt.Errorf("cannot resolve artifacts, loader is nil")
	}

	a := &Artifacts{}
	for _, s := range slots {
		h, err := loader.Resolve(s.Path)
		if err != nil {
			return nil, &ResolutionError{Field: s.Field, Path: s.Path, Err: err}
		}
		*s.field(a) = h
	}

	return a, nil
}

// NewConcurrent is like New, but issues all resolutions at once and waits for
// them to complete.  The loader must be safe for concurrent use.  If more than
// one resolution fails, the error of the earliest name in Names is returned.
func NewConcurrent(loader Loader) (*Artifacts, error) {
	if loader == nil {
		return nil, fmt.Errorf("cannot resolve artifacts, loader is nil")
	}

	var handles [len(slots)]Handle
	var errs [len(slots)]error

	var g errgroup.Group
	for i := range slots {
		i := i
		g.Go(func() error {
			handles[i], errs[i] = loader.Resolve(slots[i].Path)
			return errs[i]
		})
	}

	if g.Wait() != nil {
		for i, err := range errs {
			if err != nil {
				return nil, &ResolutionError{Field: slots[i].Field, Path: slots[i].Path, Err: err}
			}
		}
	}

	a := &Artifacts{}
	for i, s := range slots {
		*s.field(a) = handles[i]
	}

	return a, nil
}

// Walk visits each resolved artifact in resolution order.  Any error returned
// by f terminates the walk, and is returned as-is.
func (a *Artifacts) Walk(f func(Name, Handle) error) error {
	for _, s := range slots {
		if err := f(s.Name, *s.field(a)); err != nil {
			return err
		}
	}
	return nil
}

// ErrNotFound should be returned (or wrapped) by a Loader which has no
// artifact for a requested name.
var ErrNotFound = errors.New("artifact not found")

// IsNotFound determines if the root cause of the given error is ErrNotFound
func IsNotFound(err error) bool {
	return err != nil && errors.Cause(err) == ErrNotFound
}

// ResolutionError reports a failure by a Loader to resolve one artifact.
type ResolutionError struct {
	Field string // Artifacts field being populated
	Path  string // logical name given to the loader
	Err   error  // loader error, unmodified
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %s (%s): %s", e.Field, e.Path, e.Err)
}

// Cause returns the loader's error, for use with errors.Cause
func (e *ResolutionError) Cause() error {
	return e.Err
}

// Unwrap returns the loader's error
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
