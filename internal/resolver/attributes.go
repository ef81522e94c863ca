package resolver

import (
	"fmt"

	"github.com/seitarof/gen-xsd/internal/param"
)

// fieldShape classifies a field value for the rpc/encoded rules.
type fieldShape int

const (
	shapePrimitive fieldShape = iota
	shapeSimpleArray
	shapeObjectArray
	shapeWrapper
	shapeUnresolved
)

func shapeOf(d param.Description) fieldShape {
	switch {
	case d.IsPrimitive():
		return shapePrimitive
	case d.IsSimpleArray():
		return shapeSimpleArray
	case d.IsObjectArray():
		return shapeObjectArray
	case d.IsObject():
		return shapeWrapper
	default:
		return shapeUnresolved
	}
}

func unresolvedReason(d param.Description) string {
	switch {
	case d.Kind == param.KindArray && d.Elem == nil:
		return "array without element"
	case d.Kind == param.KindArray:
		return "array of " + d.Elem.Kind.String() + " is not supported"
	default:
		return "no rule accepts " + d.Kind.String() + " " + d.Name
	}
}

// ElementAttributeBuilder builds element attributes for object fields.
type ElementAttributeBuilder struct {
	Primitives PrimitiveTypeMap
}

// Build returns one attribute per field, in declaration order.
func (b ElementAttributeBuilder) Build(fields []param.Field) ([]ElementAttribute, error) {
	attrs := make([]ElementAttribute, 0, len(fields))
	for _, f := range fields {
		attr, err := b.buildOne(f)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func (b ElementAttributeBuilder) buildOne(f param.Field) (ElementAttribute, error) {
	attr := ElementAttribute{Kind: AttributeType, Name: f.Name, Optional: f.Optional}
	switch shapeOf(f.Value) {
	case shapePrimitive:
		ref, err := b.Primitives.Resolve(f.Value.Primitive)
		if err != nil {
			return ElementAttribute{}, err
		}
		attr.Value = ref
	case shapeSimpleArray:
		if _, err := b.Primitives.Resolve(f.Value.Elem.Primitive); err != nil {
			return ElementAttribute{}, err
		}
		attr.Value = NamespacedReference(ArrayTypeName(f.Value.Name))
	case shapeObjectArray:
		attr.Value = NamespacedReference(ArrayTypeName(f.Value.Name))
	case shapeWrapper:
		attr.Kind = AttributeElement
		attr.Value = NamespacedReference(f.Value.Name)
	default:
		return ElementAttribute{}, fmt.Errorf("%w: %s", ErrUnresolvedFieldShape, unresolvedReason(f.Value))
	}
	return attr, nil
}
