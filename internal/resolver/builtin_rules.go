package resolver

import "github.com/seitarof/gen-xsd/internal/param"

// DefaultRules returns the rpc/encoded rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		&SimpleArrayRule{},
		&SimpleObjectRule{},
		&WrapperFieldRule{},
		&ArrayFieldRule{},
		&ObjectArrayRule{},
		&ObjectArrayFieldRule{},
	}
}

// SimpleArrayRule: array of primitives -> ArrayOf<Name> with xsd:<kind>[].
type SimpleArrayRule struct{}

func (r *SimpleArrayRule) Name() string { return "simple-array" }

func (r *SimpleArrayRule) Try(s *Scope, d param.Description) (TypeDefinition, bool, error) {
	if !d.IsSimpleArray() {
		return TypeDefinition{}, false, nil
	}
	ref, err := s.PrimitiveType(d.Elem.Primitive)
	if err != nil {
		return TypeDefinition{}, true, err
	}
	return TypeDefinition{Name: ArrayTypeName(d.Name), ArrayType: ref + "[]"}, true, nil
}

// SimpleObjectRule: object with primitive fields only.
type SimpleObjectRule struct{}

func (r *SimpleObjectRule) Name() string { return "simple-object" }

func (r *SimpleObjectRule) Try(s *Scope, d param.Description) (TypeDefinition, bool, error) {
	if !d.IsObject() {
		return TypeDefinition{}, false, nil
	}
	nested, ok := nestedFields(d.Fields)
	if !ok || len(nested) != 0 {
		return TypeDefinition{}, false, nil
	}
	return resolveObject(s, d, nil)
}

// WrapperFieldRule: object with one wrapper object field.
type WrapperFieldRule struct{}

func (r *WrapperFieldRule) Name() string { return "wrapper-field" }

func (r *WrapperFieldRule) Try(s *Scope, d param.Description) (TypeDefinition, bool, error) {
	return trySingleNested(s, d, shapeWrapper)
}

// ArrayFieldRule: object with one array-of-primitives field.
type ArrayFieldRule struct{}

func (r *ArrayFieldRule) Name() string { return "array-field" }

func (r *ArrayFieldRule) Try(s *Scope, d param.Description) (TypeDefinition, bool, error) {
	return trySingleNested(s, d, shapeSimpleArray)
}

// ObjectArrayRule: array of objects -> ArrayOf<Name> with ns:<Object>[],
// depending on the element type.
type ObjectArrayRule struct{}

func (r *ObjectArrayRule) Name() string { return "object-array" }

func (r *ObjectArrayRule) Try(s *Scope, d param.Description) (TypeDefinition, bool, error) {
	if !d.IsObjectArray() {
		return TypeDefinition{}, false, nil
	}
	elem, err := s.Resolve("[]", *d.Elem)
	if err != nil {
		return TypeDefinition{}, true, err
	}
	return TypeDefinition{
		Name:      ArrayTypeName(d.Name),
		ArrayType: ArrayOfReference(d.Elem.Name),
		Complex:   []TypeDefinition{elem},
	}, true, nil
}

// ObjectArrayFieldRule: object with one array-of-objects field. Resolution
// nests three levels: object, array, element.
type ObjectArrayFieldRule struct{}

func (r *ObjectArrayFieldRule) Name() string { return "object-array-field" }

func (r *ObjectArrayFieldRule) Try(s *Scope, d param.Description) (TypeDefinition, bool, error) {
	return trySingleNested(s, d, shapeObjectArray)
}

// NestedFieldsRule accepts objects with any number of wrapper or array
// fields. It is only installed by WithMultipleNestedFields.
type NestedFieldsRule struct{}

func (r *NestedFieldsRule) Name() string { return "nested-fields" }

func (r *NestedFieldsRule) Try(s *Scope, d param.Description) (TypeDefinition, bool, error) {
	if !d.IsObject() {
		return TypeDefinition{}, false, nil
	}
	nested, ok := nestedFields(d.Fields)
	if !ok || len(nested) == 0 {
		return TypeDefinition{}, false, nil
	}
	return resolveObject(s, d, nested)
}

func trySingleNested(s *Scope, d param.Description, want fieldShape) (TypeDefinition, bool, error) {
	if !d.IsObject() {
		return TypeDefinition{}, false, nil
	}
	nested, ok := nestedFields(d.Fields)
	if !ok || len(nested) != 1 || shapeOf(d.Fields[nested[0]].Value) != want {
		return TypeDefinition{}, false, nil
	}
	return resolveObject(s, d, nested)
}

// resolveObject builds an object type whose Complex holds the resolution of
// each field index in nested.
func resolveObject(s *Scope, d param.Description, nested []int) (TypeDefinition, bool, error) {
	attrs, err := s.Attributes(d.Fields)
	if err != nil {
		return TypeDefinition{}, true, err
	}
	var deps []TypeDefinition
	for _, i := range nested {
		f := d.Fields[i]
		td, err := s.Resolve("."+f.Name, f.Value)
		if err != nil {
			return TypeDefinition{}, true, err
		}
		deps = append(deps, td)
	}
	return TypeDefinition{Name: d.Name, ElementAttributes: attrs, Complex: deps}, true, nil
}
