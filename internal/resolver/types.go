package resolver

// AttributeKind tells whether an element attribute references a type or a
// standalone element.
type AttributeKind string

const (
	AttributeType    AttributeKind = "type"
	AttributeElement AttributeKind = "element"
)

// ElementAttribute describes one field inside an object type.
type ElementAttribute struct {
	Kind     AttributeKind
	Value    string
	Name     string
	Optional bool
}

// TypeDefinition is one schema type node.
//
// Array types carry ArrayType and no ElementAttributes; object types carry
// ElementAttributes and an empty ArrayType. Complex lists the nested types
// this one depends on, in discovery order.
type TypeDefinition struct {
	Name              string
	ArrayType         string
	ElementAttributes []ElementAttribute
	Complex           []TypeDefinition
}

// IsArray reports whether t is an array type.
func (t TypeDefinition) IsArray() bool {
	return t.ArrayType != ""
}

// Equal reports structural equality. Nil and empty slices compare equal.
func (t TypeDefinition) Equal(o TypeDefinition) bool {
	if !t.SameShape(o) || len(t.Complex) != len(o.Complex) {
		return false
	}
	for i := range t.Complex {
		if !t.Complex[i].Equal(o.Complex[i]) {
			return false
		}
	}
	return true
}

// SameShape compares name, array type and element attributes, ignoring
// nested dependencies.
func (t TypeDefinition) SameShape(o TypeDefinition) bool {
	if t.Name != o.Name || t.ArrayType != o.ArrayType {
		return false
	}
	if len(t.ElementAttributes) != len(o.ElementAttributes) {
		return false
	}
	for i := range t.ElementAttributes {
		if t.ElementAttributes[i] != o.ElementAttributes[i] {
			return false
		}
	}
	return true
}
