package docmap

import "errors"

// Structural errors reported by reads and writes. All failures wrap
// one of these sentinels, so callers can classify with errors.Is.
var (
	// ErrIndexAccess reports a read that used list-index notation on a
	// value that is not a list, or an index outside the list bounds.
	ErrIndexAccess = errors.New("list index access failed")

	// ErrNavigation reports a read that tried to descend into a value
	// that is not a document.
	ErrNavigation = errors.New("cannot descend into non-document value")

	// ErrIndexWrite reports a write that treated a non-list value as a
	// list, could not resolve the requested index, or found something
	// other than a document at a nested index target.
	ErrIndexWrite = errors.New("list index write failed")

	// ErrInvalidJSON reports input that is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid json document")

	// ErrNotObject reports wire input whose top-level value is not an
	// object/mapping, which cannot form a Document.
	ErrNotObject = errors.New("top-level value is not an object")
)

// isStructural reports whether err is one of the navigation errors the
// multi-expression fallback read is allowed to swallow.
func isStructural(err error) bool {
	return errors.Is(err, ErrIndexAccess) ||
		errors.Is(err, ErrNavigation) ||
		errors.Is(err, ErrIndexWrite)
}
