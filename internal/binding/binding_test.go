package binding

import (
	"errors"
	"strings"
	"testing"

	"github.com/seitarof/gen-xsd/internal/param"
	"github.com/seitarof/gen-xsd/internal/resolver"
)

func TestRpcEncoded_Identity(t *testing.T) {
	s := NewRpcEncoded()
	if got := s.BindingStyle(); got != "rpc" {
		t.Fatalf("BindingStyle() = %s, want rpc", got)
	}
	if got := s.BindingUse(); got != "encoded" {
		t.Fatalf("BindingUse() = %s, want encoded", got)
	}
}

func TestRpcEncoded_TypeParameters(t *testing.T) {
	s := NewRpcEncoded()

	types, err := s.TypeParameters(param.SimpleArray("Names", param.PrimitiveString))
	if err != nil {
		t.Fatalf("TypeParameters() error = %v", err)
	}
	if len(types) != 1 || types[0].Name != "ArrayOfNames" || types[0].ArrayType != "xsd:string[]" {
		t.Fatalf("unexpected types: %#v", types)
	}
}

func TestRpcEncoded_PassesResolverOptions(t *testing.T) {
	wrapper := param.Object("W", param.NewField("id", param.Primitive(param.PrimitiveInt)))
	pair := param.Object("Pair", param.NewField("a", wrapper), param.NewField("b", wrapper))

	if _, err := NewRpcEncoded().TypeParameters(pair); !errors.Is(err, resolver.ErrAmbiguousWrapperField) {
		t.Fatalf("error = %v, want ErrAmbiguousWrapperField", err)
	}
	types, err := NewRpcEncoded(resolver.WithMultipleNestedFields()).TypeParameters(pair)
	if err != nil {
		t.Fatalf("TypeParameters() error = %v", err)
	}
	if len(types[0].Complex) != 2 {
		t.Fatalf("expected 2 complex, got %d", len(types[0].Complex))
	}
}

func TestLookup_Default(t *testing.T) {
	s, err := Lookup("rpc", "encoded")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if _, ok := s.(*RpcEncoded); !ok {
		t.Fatalf("expected *RpcEncoded, got %T", s)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("document", "literal")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "rpc/encoded") {
		t.Fatalf("error should list available styles: %v", err)
	}
}

type stubStyle struct{}

func (stubStyle) BindingStyle() string { return "document" }

func (stubStyle) BindingUse() string { return "literal" }

func (stubStyle) TypeParameters(params ...param.Description) ([]resolver.TypeDefinition, error) {
	return nil, nil
}

func TestRegister_AddsStyle(t *testing.T) {
	Register(stubStyle{})
	t.Cleanup(func() { delete(styles, key("document", "literal")) })

	if _, err := Lookup("document", "literal"); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	got := Available()
	if len(got) != 2 || got[0] != "document/literal" || got[1] != "rpc/encoded" {
		t.Fatalf("Available() = %v", got)
	}
}
