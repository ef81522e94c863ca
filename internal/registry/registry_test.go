package registry

import (
	"errors"
	"testing"

	"github.com/seitarof/gen-xsd/internal/param"
	"github.com/seitarof/gen-xsd/internal/resolver"
)

func TestRegistry_AddFlattensDependenciesFirst(t *testing.T) {
	types := mustResolve(t, listOfAgents())

	reg := New()
	if err := reg.Add(types...); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got := names(reg.Types())
	want := []string{"MockUserWrapper", "ArrayOfAgents", "ListOfAgents"}
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Types() = %v, want %v", got, want)
		}
	}
}

func TestRegistry_DeduplicatesAcrossCalls(t *testing.T) {
	reg := New()
	if err := reg.Add(mustResolve(t, listOfAgents())...); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	agent := param.Object("AgentNameWithId",
		param.NewField("agent", wrapper()),
		param.NewField("id", param.Primitive(param.PrimitiveInt)),
	)
	if err := reg.Add(mustResolve(t, agent)...); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if reg.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (%v)", reg.Len(), names(reg.Types()))
	}
	if _, ok := reg.Lookup("AgentNameWithId"); !ok {
		t.Fatal("AgentNameWithId not registered")
	}
}

func TestRegistry_ConflictIsAllOrNothing(t *testing.T) {
	reg := New()
	if err := reg.Add(mustResolve(t, wrapper())...); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	other := param.Object("Holder",
		param.NewField("agent", param.Object("MockUserWrapper",
			param.NewField("id", param.Primitive(param.PrimitiveString)),
		)),
	)
	err := reg.Add(mustResolve(t, other)...)
	if !errors.Is(err, ErrConflictingType) {
		t.Fatalf("error = %v, want ErrConflictingType", err)
	}
	if _, ok := reg.Lookup("Holder"); ok {
		t.Fatal("Holder should not be registered after conflict")
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
}

func mustResolve(t *testing.T, d param.Description) []resolver.TypeDefinition {
	t.Helper()
	types, err := resolver.New().TypeParameters(d)
	if err != nil {
		t.Fatalf("TypeParameters() error = %v", err)
	}
	return types
}

func names(types []resolver.TypeDefinition) []string {
	out := make([]string, 0, len(types))
	for _, td := range types {
		out = append(out, td.Name)
	}
	return out
}

func wrapper() param.Description {
	return param.Object("MockUserWrapper",
		param.NewField("id", param.Primitive(param.PrimitiveInt)),
		param.NewField("name", param.Primitive(param.PrimitiveString)),
		param.NewField("age", param.Primitive(param.PrimitiveInt)),
	)
}

func listOfAgents() param.Description {
	return param.Object("ListOfAgents",
		param.NewField("agents", param.ObjectArray("Agents", wrapper())),
		param.NewField("id", param.Primitive(param.PrimitiveInt)),
	)
}
