package docmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML mapping into a Document. Decoding goes
// through the yaml.Node API so that mapping key order survives, which
// a plain map[string]any unmarshal would lose. The top-level value
// must be a mapping; an empty input yields an empty Document.
func FromYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("docmap: invalid yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return NewDocument(), nil
	}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("docmap: %w", ErrNotObject)
	}
	return documentFromNode(node)
}

// ToYAML encodes doc as a YAML mapping, preserving key insertion
// order.
func ToYAML(doc *Document) ([]byte, error) {
	node, err := nodeFromValue(doc)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func documentFromNode(n *yaml.Node) (*Document, error) {
	doc := NewDocument()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("docmap: non-string yaml key at line %d: %w", keyNode.Line, err)
		}
		value, err := valueFromNode(valueNode)
		if err != nil {
			return nil, err
		}
		doc.Put(key, value)
	}
	return doc, nil
}

func valueFromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return documentFromNode(n)
	case yaml.SequenceNode:
		list := NewList()
		for _, elem := range n.Content {
			value, err := valueFromNode(elem)
			if err != nil {
				return nil, err
			}
			list.Push(value)
		}
		return list, nil
	case yaml.AliasNode:
		return valueFromNode(n.Alias)
	case yaml.ScalarNode:
		var value any
		if err := n.Decode(&value); err != nil {
			return nil, fmt.Errorf("docmap: bad yaml scalar at line %d: %w", n.Line, err)
		}
		return value, nil
	default:
		return nil, nil
	}
}

func nodeFromValue(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case *Document:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.keys {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
			valueNode, err := nodeFromValue(v.values[key])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valueNode)
		}
		return node, nil
	case *List:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range v.items {
			elemNode, err := nodeFromValue(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, elemNode)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, fmt.Errorf("docmap: cannot encode %T as yaml: %w", v, err)
		}
		return node, nil
	}
}
