package resolver

import (
	"errors"
	"testing"

	"github.com/seitarof/gen-xsd/internal/param"
)

func TestPrimitiveTypeMap_DefaultIsTotal(t *testing.T) {
	p := DefaultPrimitiveTypes()
	want := map[param.PrimitiveKind]string{
		param.PrimitiveString:  "xsd:string",
		param.PrimitiveInt:     "xsd:int",
		param.PrimitiveInteger: "xsd:int",
	}

	kinds := p.Kinds()
	if len(kinds) != len(want) {
		t.Fatalf("expected %d kinds, got %v", len(want), kinds)
	}
	for _, k := range kinds {
		got, err := p.Resolve(k)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", k, err)
		}
		if got != want[k] {
			t.Fatalf("Resolve(%q) = %s, want %s", k, got, want[k])
		}
		again, _ := p.Resolve(k)
		if again != got {
			t.Fatalf("Resolve(%q) not deterministic: %s vs %s", k, got, again)
		}
	}
}

func TestPrimitiveTypeMap_Unsupported(t *testing.T) {
	_, err := DefaultPrimitiveTypes().Resolve("float")
	if !errors.Is(err, ErrUnsupportedPrimitiveKind) {
		t.Fatalf("error = %v, want ErrUnsupportedPrimitiveKind", err)
	}

	var zero PrimitiveTypeMap
	if _, err := zero.Resolve(param.PrimitiveString); !errors.Is(err, ErrUnsupportedPrimitiveKind) {
		t.Fatalf("zero map should resolve nothing, got %v", err)
	}
}

func TestNewPrimitiveTypeMap_Copies(t *testing.T) {
	src := map[param.PrimitiveKind]string{"boolean": "xsd:boolean"}
	p := NewPrimitiveTypeMap(src)
	src["boolean"] = "xsd:string"

	got, err := p.Resolve("boolean")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "xsd:boolean" {
		t.Fatalf("map should not alias caller's map, got %s", got)
	}
}
