package docusaurus

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Field is one key of an Object.
type Field struct {
	Key   string
	Value any
}

// Object is a mapping that keeps insertion order through every encoder.
type Object []Field

// Set appends key with value.
func (o Object) Set(key string, value any) Object {
	return append(o, Field{Key: key, Value: value})
}

// SetIf appends key only when cond holds.
func (o Object) SetIf(cond bool, key string, value any) Object {
	if !cond {
		return o
	}
	return o.Set(key, value)
}

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}

func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalJSON(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := marshalJSON(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range o {
		var val yaml.Node
		if err := val.Encode(f.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&val,
		)
	}
	return node, nil
}

// ThemeRef names a theme exported by prism-react-renderer. The TypeScript
// encoder emits a reference to the import; other encoders emit the name.
type ThemeRef string

// Satisfies annotates an object with the TypeScript type it must satisfy.
// Data encoders ignore the annotation.
type Satisfies struct {
	Value Object
	Type  string
}

func (s Satisfies) MarshalJSON() ([]byte, error) { return marshalJSON(s.Value) }

func (s Satisfies) MarshalYAML() (any, error) { return s.Value, nil }

// marshalJSON encodes v without HTML escaping and without the trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
