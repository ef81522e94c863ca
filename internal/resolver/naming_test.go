package resolver

import "testing"

func TestNaming(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "array type name", got: ArrayTypeName("Names"), want: "ArrayOfNames"},
		{name: "no pluralization", got: ArrayTypeName("Company"), want: "ArrayOfCompany"},
		{name: "namespaced reference", got: NamespacedReference("MockUserWrapper"), want: "ns:MockUserWrapper"},
		{name: "array of reference", got: ArrayOfReference("Companies"), want: "ns:Companies[]"},
		{name: "round trip", got: ArrayOfReference(ArrayTypeName("Agent")), want: "ns:ArrayOfAgent[]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}
