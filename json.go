package docmap

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// FromJSON decodes a JSON object into a Document, preserving the key
// order of the input. Numbers decode as float64, nested objects as
// *Document and arrays as *List. The top-level value must be an
// object.
func FromJSON(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("docmap: %w", ErrInvalidJSON)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("docmap: %w", ErrNotObject)
	}
	return documentFromResult(root), nil
}

// ParseJSONValue decodes a single JSON value of any type into the
// engine's value domain: objects become *Document, arrays *List,
// numbers float64.
func ParseJSONValue(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("docmap: %w", ErrInvalidJSON)
	}
	return valueFromResult(gjson.ParseBytes(data)), nil
}

// ToJSON encodes doc as compact JSON, preserving key insertion order.
func ToJSON(doc *Document) ([]byte, error) {
	if doc == nil {
		return []byte("null"), nil
	}
	return json.Marshal(doc)
}

// MarshalValue encodes any engine value (scalar, *Document or *List)
// as compact JSON.
func MarshalValue(value any) ([]byte, error) {
	return json.Marshal(value)
}

func documentFromResult(r gjson.Result) *Document {
	doc := NewDocument()
	r.ForEach(func(key, value gjson.Result) bool {
		doc.Put(key.String(), valueFromResult(value))
		return true
	})
	return doc
}

func valueFromResult(r gjson.Result) any {
	switch {
	case r.IsObject():
		return documentFromResult(r)
	case r.IsArray():
		list := NewList()
		r.ForEach(func(_, elem gjson.Result) bool {
			list.Push(valueFromResult(elem))
			return true
		})
		return list
	}
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Num
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return nil
	}
}
