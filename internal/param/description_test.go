package param

import (
	"strings"
	"testing"
)

func TestDescription_Predicates(t *testing.T) {
	wrapper := Object("MockUserWrapper", NewField("id", Primitive(PrimitiveInt)))

	tests := []struct {
		name        string
		desc        Description
		simpleArray bool
		objectArray bool
		object      bool
	}{
		{name: "primitive", desc: Primitive(PrimitiveString)},
		{name: "simple array", desc: SimpleArray("Names", PrimitiveString), simpleArray: true},
		{name: "object array", desc: ObjectArray("Agents", wrapper), objectArray: true},
		{name: "array of arrays", desc: ArrayOf("Grid", SimpleArray("Row", PrimitiveInt))},
		{name: "object", desc: wrapper, object: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.desc.IsSimpleArray(); got != tc.simpleArray {
				t.Fatalf("IsSimpleArray() = %v, want %v", got, tc.simpleArray)
			}
			if got := tc.desc.IsObjectArray(); got != tc.objectArray {
				t.Fatalf("IsObjectArray() = %v, want %v", got, tc.objectArray)
			}
			if got := tc.desc.IsObject(); got != tc.object {
				t.Fatalf("IsObject() = %v, want %v", got, tc.object)
			}
		})
	}
}

func TestDescription_String(t *testing.T) {
	d := Object("NamesInfo",
		NewField("names", SimpleArray("Names", PrimitiveString)),
		OptionalField("id", Primitive(PrimitiveInt)),
	)
	want := "NamesInfo{names:Names[string],id?:int}"
	if got := d.String(); got != want {
		t.Fatalf("String() = %s, want %s", got, want)
	}
}

func TestDescription_StringCyclic(t *testing.T) {
	loop := Description{Kind: KindArray, Name: "Loop"}
	loop.Elem = &loop

	got := loop.String()
	if !strings.HasSuffix(strings.TrimRight(got, "]"), "...") {
		t.Fatalf("cyclic String() should be truncated, got %s", got)
	}
	if n := strings.Count(got, "Loop["); n != maxStringDepth+1 {
		t.Fatalf("expected %d levels, got %d", maxStringDepth+1, n)
	}
}
