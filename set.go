package docmap

import (
	"fmt"

	"go.uber.org/zap"
)

// indexStrategy resolves where a list write lands. One implementation
// per ArrayIndexMode, selected at construction.
type indexStrategy interface {
	// placeValue stores value in list according to the index token of
	// a terminal segment.
	placeValue(list *List, token string, value any) error

	// placeDocument ensures a document element exists in list for the
	// index token of a nested segment and returns its index.
	placeDocument(list *List, token string) (int, error)
}

// additiveIndex appends on every write; the literal index is ignored.
// Repeated writes to the "same" path grow the list by exactly one
// element each, so they never clobber each other.
type additiveIndex struct{}

func (additiveIndex) placeValue(list *List, _ string, value any) error {
	list.Push(value)
	return nil
}

func (additiveIndex) placeDocument(list *List, _ string) (int, error) {
	list.Push(NewDocument())
	return list.Len() - 1, nil
}

// explicitIndex takes the index literally: in-range overwrites, index
// == length appends, anything else fails.
type explicitIndex struct{}

func (explicitIndex) placeValue(list *List, token string, value any) error {
	idx, err := parseIndex(token)
	if err != nil || idx < 0 {
		return fmt.Errorf("bad index %q: %w", token, ErrIndexWrite)
	}
	if list.Set(idx, value) {
		return nil
	}
	list.Push(value)
	return nil
}

func (explicitIndex) placeDocument(list *List, token string) (int, error) {
	idx, err := parseIndex(token)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("bad index %q: %w", token, ErrIndexWrite)
	}
	// Grow by a single slot only; gaps are never back-filled, so an
	// index more than one past the end cannot be satisfied.
	if idx >= list.Len() {
		list.Push(NewDocument())
	}
	if idx >= list.Len() {
		return 0, fmt.Errorf("index %d does not exist in list of length %d: %w", idx, list.Len(), ErrIndexWrite)
	}
	return idx, nil
}

// SetValue stores value at the position addressed by expr, creating
// intermediate documents and lists as needed. An empty expression is a
// no-op, as is a nil value when null writes are disabled. Structural
// mismatches fail with errors wrapping ErrIndexWrite; containers
// created before the failure point are kept (no rollback).
func (m *Mapper) SetValue(doc *Document, expr string, value any) error {
	return m.setValue(doc, SplitPath(expr), value)
}

func (m *Mapper) setValue(doc *Document, parts []string, value any) error {
	if len(parts) == 0 || (!m.setNulls && value == nil) {
		return nil
	}
	if len(parts) == 1 {
		doc.Put(parts[0], value)
		return nil
	}

	current, next := parts[0], parts[1]

	// Terminal list element (subobj.0): place the value directly.
	if len(parts) == 2 && IsIndexToken(next) {
		list, err := m.ensureList(doc, current)
		if err != nil {
			return err
		}
		if err := m.index.placeValue(list, next, value); err != nil {
			return fmt.Errorf("docmap: could not set index %q on key %q: %w", next, current, err)
		}
		return nil
	}

	// List of documents (subobj.0.subprop): resolve or create the
	// element, then recurse into it.
	if IsIndexToken(next) {
		list, err := m.ensureList(doc, current)
		if err != nil {
			return err
		}
		idx, err := m.index.placeDocument(list, next)
		if err != nil {
			return fmt.Errorf("docmap: could not set index %q on key %q: %w", next, current, err)
		}
		elem, _ := list.At(idx)
		sub, ok := elem.(*Document)
		if !ok {
			return fmt.Errorf("docmap: element %d of key %q is not a document: %w", idx, current, ErrIndexWrite)
		}
		return m.setValue(sub, parts[2:], value)
	}

	// Plain nested key: reuse an existing document, replace anything
	// else with a fresh one.
	base, ok := doc.Get(current).(*Document)
	if !ok || base == nil {
		base = NewDocument()
		m.log.Debug("created intermediate document", zap.String("key", current))
	}
	doc.Put(current, base)
	return m.setValue(base, parts[1:], value)
}

// ensureList returns the list stored under key, creating an empty one
// when the key is absent or holds nil. A non-list value fails.
func (m *Mapper) ensureList(doc *Document, key string) (*List, error) {
	value, ok := doc.Lookup(key)
	if !ok || value == nil {
		list := NewList()
		doc.Put(key, list)
		m.log.Debug("created list", zap.String("key", key))
		return list, nil
	}
	list, ok := value.(*List)
	if !ok {
		return nil, fmt.Errorf("docmap: key %q is not a list: %w", key, ErrIndexWrite)
	}
	return list, nil
}
