package param

import "strings"

// Kind is the coarse shape of a parameter description.
type Kind int

const (
	KindPrimitive Kind = iota
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// PrimitiveKind names a primitive value kind as the host reports it.
type PrimitiveKind string

const (
	PrimitiveString  PrimitiveKind = "string"
	PrimitiveInt     PrimitiveKind = "int"
	PrimitiveInteger PrimitiveKind = "integer"
)

// Description is a normalized parameter description.
//
// For KindArray, Name is the semantic element name used to build
// ArrayOf<Name> and Elem describes the element. For KindObject, Name is the
// object type name and Fields keeps declaration order.
type Description struct {
	Kind      Kind
	Primitive PrimitiveKind
	Name      string
	Elem      *Description
	Fields    []Field
}

// Field is one named member of an object description.
type Field struct {
	Name     string
	Optional bool
	Value    Description
}

// Method groups the parameters of one procedure.
type Method struct {
	Name   string
	Params []Description
}

// Primitive returns a primitive description.
func Primitive(kind PrimitiveKind) Description {
	return Description{Kind: KindPrimitive, Primitive: kind}
}

// SimpleArray returns an array of primitives named elementName.
func SimpleArray(elementName string, kind PrimitiveKind) Description {
	elem := Primitive(kind)
	return Description{Kind: KindArray, Name: elementName, Elem: &elem}
}

// ObjectArray returns an array of obj named elementName.
func ObjectArray(elementName string, obj Description) Description {
	return Description{Kind: KindArray, Name: elementName, Elem: &obj}
}

// ArrayOf returns an array with an arbitrary element description.
func ArrayOf(elementName string, elem Description) Description {
	return Description{Kind: KindArray, Name: elementName, Elem: &elem}
}

// Object returns an object description with fields in the given order.
func Object(name string, fields ...Field) Description {
	return Description{Kind: KindObject, Name: name, Fields: fields}
}

// NewField returns a required field.
func NewField(name string, value Description) Field {
	return Field{Name: name, Value: value}
}

// OptionalField returns a field marked optional.
func OptionalField(name string, value Description) Field {
	return Field{Name: name, Optional: true, Value: value}
}

// IsPrimitive reports whether d is a primitive value.
func (d Description) IsPrimitive() bool { return d.Kind == KindPrimitive }

// IsObject reports whether d is an object.
func (d Description) IsObject() bool { return d.Kind == KindObject }

// IsSimpleArray reports whether d is an array of primitives.
func (d Description) IsSimpleArray() bool {
	return d.Kind == KindArray && d.Elem != nil && d.Elem.Kind == KindPrimitive
}

// IsObjectArray reports whether d is an array of objects.
func (d Description) IsObjectArray() bool {
	return d.Kind == KindArray && d.Elem != nil && d.Elem.Kind == KindObject
}

// maxStringDepth bounds String on cyclic values; deeper levels print "...".
const maxStringDepth = 64

// String renders a compact shape, e.g. "Info{name:string,age:int}".
func (d Description) String() string {
	var b strings.Builder
	d.writeTo(&b, 0)
	return b.String()
}

func (d Description) writeTo(b *strings.Builder, depth int) {
	if depth > maxStringDepth {
		b.WriteString("...")
		return
	}
	switch d.Kind {
	case KindPrimitive:
		b.WriteString(string(d.Primitive))
	case KindArray:
		b.WriteString(d.Name)
		b.WriteString("[")
		if d.Elem != nil {
			d.Elem.writeTo(b, depth+1)
		}
		b.WriteString("]")
	case KindObject:
		b.WriteString(d.Name)
		b.WriteString("{")
		for i, f := range d.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(f.Name)
			if f.Optional {
				b.WriteString("?")
			}
			b.WriteString(":")
			f.Value.writeTo(b, depth+1)
		}
		b.WriteString("}")
	default:
		b.WriteString("?")
	}
}
