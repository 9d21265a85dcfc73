// Package errs defines the tagged error kinds shared by the core packages.
package errs

import "github.com/cpmech/gosl/chk"

// Kind tags an error with one of the four core error categories.
type Kind int

const (
	// InvalidMeshTopology marks out-of-range indices, multiply-owned faces,
	// or blocks naming elements that are not present.
	InvalidMeshTopology Kind = iota
	// ElementBlockNotFound marks a caller-supplied block name absent from the mesh.
	ElementBlockNotFound
	// GeometryError marks a degenerate face (near-zero normal or area).
	GeometryError
	// ConfigError marks a criteria record with negative tolerances or a
	// non-positive search multiplier.
	ConfigError
)

func (k Kind) String() string {
	switch k {
	case InvalidMeshTopology:
		return "InvalidMeshTopology"
	case ElementBlockNotFound:
		return "ElementBlockNotFound"
	case GeometryError:
		return "GeometryError"
	case ConfigError:
		return "ConfigError"
	}
	return "UnknownError"
}

// Error is a tagged core error.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

// New builds a tagged error with chk.Err-style formatting.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: chk.Err(format, args...).Error()}
}

// Is reports whether err is a tagged *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
