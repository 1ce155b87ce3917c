package docmap

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Document is a mutable, insertion-ordered mapping from string keys to
// arbitrary values. Values may be scalars (string, bool, numbers,
// []byte), nil, nested *Document instances or *List sequences.
// Overwriting an existing key keeps its original position.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// Append sets key to value and returns the document, allowing chained
// construction: NewDocument().Append("a", 1).Append("b", 2).
func (d *Document) Append(key string, value any) *Document {
	d.Put(key, value)
	return d
}

// Put sets key to value, creating the key if absent. An existing key
// keeps its position in the iteration order.
func (d *Document) Put(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key, or nil if the key is absent.
// Use Lookup to distinguish an absent key from a present nil.
func (d *Document) Get(key string) any {
	return d.values[key]
}

// Lookup returns the value stored under key and whether the key exists.
func (d *Document) Lookup(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key exists, even when its value is nil.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (d *Document) Delete(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Equal reports deep equality with other: same keys in the same order,
// with recursively equal values.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k || !valueEqual(d.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the document as a JSON object, preserving key
// insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// List is a mutable ordered sequence of arbitrary values.
type List struct {
	items []any
}

// NewList creates a List holding the given items.
func NewList(items ...any) *List {
	return &List{items: items}
}

// At returns the element at index i and whether i is in range.
func (l *List) At(i int) (any, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}
	return l.items[i], true
}

// Set overwrites the element at index i and reports whether i was in
// range. It never grows the list.
func (l *List) Set(i int, v any) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i] = v
	return true
}

// Push appends values to the end of the list.
func (l *List) Push(values ...any) {
	l.items = append(l.items, values...)
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// Values returns the underlying elements in order. The slice is a
// copy; mutating it does not affect the list.
func (l *List) Values() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// MarshalJSON encodes the list as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range l.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case *Document:
		bv, ok := b.(*Document)
		return ok && av.Equal(bv)
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !valueEqual(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	default:
		return a == b
	}
}
