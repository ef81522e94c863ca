package param

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type descFile struct {
	Methods []descMethod `yaml:"methods"`
}

type descMethod struct {
	Name   string     `yaml:"name"`
	Params []descNode `yaml:"params"`
}

// descNode is one YAML node. Exactly one of Type, Array or Object selects
// the shape; Array combines with Type, Object or Items for its element.
type descNode struct {
	Name     string     `yaml:"name,omitempty"`
	Type     string     `yaml:"type,omitempty"`
	Array    string     `yaml:"array,omitempty"`
	Object   string     `yaml:"object,omitempty"`
	Fields   []descNode `yaml:"fields,omitempty"`
	Items    *descNode  `yaml:"items,omitempty"`
	Optional bool       `yaml:"optional,omitempty"`
}

// LoadYAML reads method descriptions from a YAML file.
func LoadYAML(path string) ([]Method, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	methods, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return methods, nil
}

// DecodeYAML decodes method descriptions from r.
func DecodeYAML(r io.Reader) ([]Method, error) {
	var file descFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty description")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(file.Methods) == 0 {
		return nil, fmt.Errorf("no methods declared")
	}

	methods := make([]Method, 0, len(file.Methods))
	for i, m := range file.Methods {
		if m.Name == "" {
			return nil, fmt.Errorf("methods[%d]: name is required", i)
		}
		params := make([]Description, 0, len(m.Params))
		for j, n := range m.Params {
			d, err := n.description()
			if err != nil {
				return nil, fmt.Errorf("method %q params[%d]: %w", m.Name, j, err)
			}
			params = append(params, d)
		}
		methods = append(methods, Method{Name: m.Name, Params: params})
	}
	return methods, nil
}

func (n descNode) description() (Description, error) {
	switch {
	case n.Array != "":
		elem, err := n.arrayElem()
		if err != nil {
			return Description{}, fmt.Errorf("array %q: %w", n.Array, err)
		}
		return ArrayOf(n.Array, elem), nil
	case n.Object != "":
		return n.object()
	case n.Type != "":
		return Primitive(PrimitiveKind(n.Type)), nil
	default:
		return Description{}, fmt.Errorf("node %q: one of type, array or object is required", n.Name)
	}
}

func (n descNode) arrayElem() (Description, error) {
	switch {
	case n.Items != nil:
		return n.Items.description()
	case n.Object != "":
		return n.object()
	case n.Type != "":
		return Primitive(PrimitiveKind(n.Type)), nil
	default:
		return Description{}, fmt.Errorf("element needs type, object or items")
	}
}

func (n descNode) object() (Description, error) {
	fields := make([]Field, 0, len(n.Fields))
	for i, fn := range n.Fields {
		if fn.Name == "" {
			return Description{}, fmt.Errorf("object %q fields[%d]: name is required", n.Object, i)
		}
		v, err := fn.description()
		if err != nil {
			return Description{}, fmt.Errorf("object %q: %w", n.Object, err)
		}
		fields = append(fields, Field{Name: fn.Name, Optional: fn.Optional, Value: v})
	}
	return Object(n.Object, fields...), nil
}
