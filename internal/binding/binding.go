// Package binding selects the rule set used to type operation parameters
// for a given WSDL binding style and use.
package binding

import (
	"fmt"
	"sort"

	"github.com/seitarof/gen-xsd/internal/param"
	"github.com/seitarof/gen-xsd/internal/resolver"
)

// Style is implemented by every binding style/use combination.
type Style interface {
	BindingStyle() string
	BindingUse() string
	TypeParameters(params ...param.Description) ([]resolver.TypeDefinition, error)
}

var styles = make(map[string]Style)

func key(style, use string) string { return style + "/" + use }

// Register adds s to the registry, replacing any style with the same
// style/use pair. Register is not safe for concurrent use with Lookup.
func Register(s Style) {
	styles[key(s.BindingStyle(), s.BindingUse())] = s
}

// Lookup returns the registered style for style/use.
func Lookup(style, use string) (Style, error) {
	s, ok := styles[key(style, use)]
	if !ok {
		return nil, fmt.Errorf("unknown binding %s/%s (available: %v)", style, use, Available())
	}
	return s, nil
}

// Available returns the registered style/use pairs, sorted.
func Available() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(NewRpcEncoded())
}
