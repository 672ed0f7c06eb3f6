package document

import (
	"gopkg.in/yaml.v3"
)

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagMerge = "!!merge"
)

// Bounds on the nodes produced by expanding aliases. Without aliases a document
// cannot hold more nodes than it has bytes, so the budget scales with the input.
const (
	aliasExpansionPerByte = 10
	minAliasExpansion     = 10_000
	maxAliasExpansion     = 4_000_000
)

func aliasBudget(size int) int {
	return min(max(size*aliasExpansionPerByte, minAliasExpansion), maxAliasExpansion)
}

// ParseYAML parses the first document of a YAML stream. Scalars take their kind
// from the resolved YAML tag, so `1` is an Integer, `1.0` a Real, `true` a Boolean
// and an unquoted date such as 2020-01-01 stays Text in its written form.
// Aliases are resolved and merge keys (<<) are honoured.
func ParseYAML(name string, data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, &InvalidYAMLError{Name: name, Wrapped: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Value{}, &EmptyDocumentError{Name: name}
	}
	c := &yamlConverter{name: name, budget: aliasBudget(len(data))}
	return c.convert(root.Content[0])
}

type yamlConverter struct {
	name string

	// aliasDepth > 0 while an alias is being expanded; expanded counts the nodes
	// converted there.
	aliasDepth int
	expanded   int
	budget     int
}

func (c *yamlConverter) convert(n *yaml.Node) (Value, error) {
	if c.aliasDepth > 0 {
		c.expanded++
		if c.expanded > c.budget {
			return Value{}, &InvalidYAMLError{Name: c.name, Wrapped: &ExcessiveAliasingError{Limit: c.budget}}
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NullValue(), nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		c.aliasDepth++
		defer func() { c.aliasDepth-- }()
		return c.convert(n.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := c.convert(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: Sequence, seq: items}, nil
	case yaml.MappingNode:
		return c.mapping(n)
	case yaml.ScalarNode:
		return c.scalar(n)
	}
	return Value{}, &InvalidYAMLError{Name: c.name, Wrapped: &UnsupportedTypeError{Value: n.Kind}}
}

func (c *yamlConverter) scalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case tagNull:
		return NullValue(), nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, &InvalidYAMLError{Name: c.name, Wrapped: err}
		}
		return BooleanValue(b), nil
	case tagInt:
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, &InvalidNumberError{Name: c.name, Lexeme: n.Value, Wrapped: err}
		}
		return IntegerValue(i), nil
	case tagFloat:
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, &InvalidNumberError{Name: c.name, Lexeme: n.Value, Wrapped: err}
		}
		return RealValue(f), nil
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their written form.
		return TextValue(n.Value), nil
	}
}

func (c *yamlConverter) mapping(n *yaml.Node) (Value, error) {
	entries := make([]Entry, 0, len(n.Content)/2)
	seen := make(map[string]struct{}, len(n.Content)/2)
	var merges []*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return Value{}, &NonScalarKeyError{Name: c.name, Line: k.Line}
		}
		if k.ShortTag() == tagMerge {
			merges = append(merges, v)
			continue
		}
		if _, dup := seen[k.Value]; dup {
			return Value{}, &DuplicateKeyError{Name: c.name, Key: k.Value}
		}
		seen[k.Value] = struct{}{}

		val, err := c.convert(v)
		if err != nil {
			return Value{}, err
		}
		entries = append(entries, Entry{Key: k.Value, Value: val})
	}

	// Explicit keys win over merged ones, and earlier merge sources win over later ones.
	for _, m := range merges {
		sources := []*yaml.Node{m}
		if resolved := resolveAlias(m); resolved.Kind == yaml.SequenceNode {
			sources = resolved.Content
		}
		for _, src := range sources {
			merged, err := c.convert(src)
			if err != nil {
				return Value{}, err
			}
			if merged.kind != Mapping {
				return Value{}, &InvalidYAMLError{Name: c.name, Wrapped: &UnsupportedTypeError{Value: src.Tag}}
			}
			for _, key := range merged.m.keys {
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				entries = append(entries, Entry{Key: key, Value: merged.m.values[key]})
			}
		}
	}

	return MappingValue(entries...), nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
