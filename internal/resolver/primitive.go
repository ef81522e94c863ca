package resolver

import (
	"fmt"
	"maps"
	"slices"

	"github.com/seitarof/gen-xsd/internal/param"
)

// PrimitiveTypeMap maps primitive kinds to qualified schema type names.
// The zero value resolves nothing.
type PrimitiveTypeMap struct {
	types map[param.PrimitiveKind]string
}

var defaultPrimitiveTypes = map[param.PrimitiveKind]string{
	param.PrimitiveString:  "xsd:string",
	param.PrimitiveInt:     "xsd:int",
	param.PrimitiveInteger: "xsd:int",
}

// DefaultPrimitiveTypes returns the string/integer map.
func DefaultPrimitiveTypes() PrimitiveTypeMap {
	return PrimitiveTypeMap{types: defaultPrimitiveTypes}
}

// NewPrimitiveTypeMap copies m into a new map.
func NewPrimitiveTypeMap(m map[param.PrimitiveKind]string) PrimitiveTypeMap {
	return PrimitiveTypeMap{types: maps.Clone(m)}
}

// Resolve returns the schema type name for kind.
func (p PrimitiveTypeMap) Resolve(kind param.PrimitiveKind) (string, error) {
	if ref, ok := p.types[kind]; ok {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPrimitiveKind, kind)
}

// Kinds lists the supported kinds in sorted order.
func (p PrimitiveTypeMap) Kinds() []param.PrimitiveKind {
	return slices.Sorted(maps.Keys(p.types))
}
