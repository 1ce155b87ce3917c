package docmap

import (
	"fmt"

	"go.uber.org/zap"
)

// GetValue resolves expr against doc and returns the addressed value.
// A missing key anywhere along the path, a nil intermediate value, or
// a present-but-nil terminal value all yield (nil, nil); reads do not
// distinguish an absent key from a stored null. Structural mismatches
// (index notation on a non-list, descending into a non-document) fail
// with errors wrapping ErrIndexAccess or ErrNavigation.
func (m *Mapper) GetValue(doc *Document, expr string) (any, error) {
	return m.getValue(doc, SplitPath(expr))
}

// GetFirst resolves each expression in order and returns the first
// value that is neither absent nor nil. Structural failures of a
// candidate are treated as non-matches so that a malformed expression
// never hides a later one; if nothing matches, GetFirst returns nil.
func (m *Mapper) GetFirst(doc *Document, exprs ...string) any {
	for _, expr := range exprs {
		value, err := m.getValue(doc, SplitPath(expr))
		if err != nil {
			if !isStructural(err) {
				m.log.Debug("non-structural error in fallback read",
					zap.String("expr", expr), zap.Error(err))
			}
			continue
		}
		if value != nil {
			return value
		}
	}
	return nil
}

// getValue recurses over the remaining path segments. The slice is
// never mutated; each step passes a sub-slice cursor.
func (m *Mapper) getValue(doc *Document, parts []string) (any, error) {
	if len(parts) == 0 {
		return nil, nil
	}
	if len(parts) == 1 {
		return doc.Get(parts[0]), nil
	}

	current, next := parts[0], parts[1]
	if !doc.Has(current) {
		return nil, nil
	}

	// Terminal list element (subobj.0): resolve the index directly.
	if len(parts) == 2 && IsIndexToken(next) {
		list, ok := doc.Get(current).(*List)
		if !ok {
			return nil, fmt.Errorf("docmap: could not get index %q on key %q (not a list): %w", next, current, ErrIndexAccess)
		}
		idx, err := parseIndex(next)
		if err != nil {
			return nil, fmt.Errorf("docmap: bad index %q on key %q: %w", next, current, ErrIndexAccess)
		}
		value, ok := list.At(idx)
		if !ok {
			return nil, fmt.Errorf("docmap: index %d out of bounds on key %q (len %d): %w", idx, current, list.Len(), ErrIndexAccess)
		}
		return value, nil
	}

	var sub *Document
	if IsIndexToken(next) {
		// List of documents (subobj.0.subprop): consume the key and
		// the index, descend into the element.
		list, ok := doc.Get(current).(*List)
		if !ok {
			return nil, fmt.Errorf("docmap: could not descend into key %q (not a list): %w", current, ErrNavigation)
		}
		idx, err := parseIndex(next)
		if err != nil {
			return nil, fmt.Errorf("docmap: bad index %q on key %q: %w", next, current, ErrNavigation)
		}
		elem, ok := list.At(idx)
		if !ok {
			return nil, fmt.Errorf("docmap: index %d out of bounds on key %q (len %d): %w", idx, current, list.Len(), ErrNavigation)
		}
		sub, ok = elem.(*Document)
		if !ok {
			return nil, fmt.Errorf("docmap: element %d of key %q is not a document: %w", idx, current, ErrNavigation)
		}
		parts = parts[2:]
	} else {
		value := doc.Get(current)
		if value == nil {
			return nil, nil
		}
		var ok bool
		sub, ok = value.(*Document)
		if !ok {
			return nil, fmt.Errorf("docmap: could not descend into key %q (not a document): %w", current, ErrNavigation)
		}
		parts = parts[1:]
	}

	if sub == nil {
		return nil, nil
	}
	return m.getValue(sub, parts)
}
