package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/seitarof/gen-xsd/internal/param"
)

// DefaultMaxDepth bounds nesting when no WithMaxDepth option is given.
const DefaultMaxDepth = 32

// Resolver resolves parameter descriptions into schema type trees.
type Resolver interface {
	TypeParameters(params ...param.Description) ([]TypeDefinition, error)
}

// Rule tries to resolve one parameter shape. A rule that does not apply
// returns ok=false; once it applies, its error is final.
type Rule interface {
	Name() string
	Try(s *Scope, d param.Description) (td TypeDefinition, ok bool, err error)
}

// Option configures a resolver.
type Option func(*resolverImpl)

type resolverImpl struct {
	rules       []Rule
	attrs       ElementAttributeBuilder
	maxDepth    int
	multiNested bool
}

// WithRules replaces the default rule chain.
func WithRules(rules ...Rule) Option {
	return func(r *resolverImpl) { r.rules = rules }
}

// WithMaxDepth sets the deepest nesting level accepted below a parameter.
func WithMaxDepth(n int) Option {
	return func(r *resolverImpl) { r.maxDepth = n }
}

// WithPrimitiveTypes replaces the primitive type map.
func WithPrimitiveTypes(p PrimitiveTypeMap) Option {
	return func(r *resolverImpl) { r.attrs.Primitives = p }
}

// WithMultipleNestedFields accepts objects with several wrapper or array
// fields; each contributes one Complex entry in field order.
func WithMultipleNestedFields() Option {
	return func(r *resolverImpl) { r.multiNested = true }
}

// New builds a resolver. Without options it applies DefaultRules with the
// default primitive map.
func New(opts ...Option) Resolver {
	r := &resolverImpl{
		rules:    DefaultRules(),
		attrs:    ElementAttributeBuilder{Primitives: DefaultPrimitiveTypes()},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.multiNested {
		r.rules = append(slices.Clip(r.rules), &NestedFieldsRule{})
	}
	return r
}

// TypeParameters resolves each parameter in order and concatenates the
// results. Primitive parameters are referenced directly and add no type.
// On error nothing is returned.
func (r *resolverImpl) TypeParameters(params ...param.Description) ([]TypeDefinition, error) {
	out := make([]TypeDefinition, 0, len(params))
	for i, p := range params {
		if p.IsPrimitive() {
			if _, err := r.attrs.Primitives.Resolve(p.Primitive); err != nil {
				return nil, fmt.Errorf("parameter %d: %w", i, err)
			}
			continue
		}
		s := &Scope{r: r, path: p.Name}
		td, err := s.resolve(p)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		out = append(out, td)
	}
	return out, nil
}

// Scope is the state of one resolution step, handed to rules.
type Scope struct {
	r     *resolverImpl
	path  string
	depth int
}

// Path is the dotted location of the value being resolved.
func (s *Scope) Path() string { return s.path }

// Depth is the nesting level below the top-level parameter.
func (s *Scope) Depth() int { return s.depth }

// Attributes builds element attributes for fields.
func (s *Scope) Attributes(fields []param.Field) ([]ElementAttribute, error) {
	attrs, err := s.r.attrs.Build(fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return attrs, nil
}

// PrimitiveType resolves kind through the configured type map.
func (s *Scope) PrimitiveType(kind param.PrimitiveKind) (string, error) {
	ref, err := s.r.attrs.Primitives.Resolve(kind)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.path, err)
	}
	return ref, nil
}

// Resolve recursively resolves a nested value one level down. segment is
// appended to the path as is (".name" or "[]").
func (s *Scope) Resolve(segment string, d param.Description) (TypeDefinition, error) {
	child := &Scope{r: s.r, path: s.path + segment, depth: s.depth + 1}
	return child.resolve(d)
}

func (s *Scope) resolve(d param.Description) (TypeDefinition, error) {
	if s.depth > s.r.maxDepth {
		return TypeDefinition{}, fmt.Errorf("%s: %w (max depth %d)", s.path, ErrRecursionLimitExceeded, s.r.maxDepth)
	}
	for _, rule := range s.r.rules {
		td, ok, err := rule.Try(s, d)
		if err != nil {
			return TypeDefinition{}, err
		}
		if ok {
			return td, nil
		}
	}
	return TypeDefinition{}, s.diagnose(d)
}

// diagnose explains why no rule accepted d.
func (s *Scope) diagnose(d param.Description) error {
	switch d.Kind {
	case param.KindObject:
		if _, err := s.Attributes(d.Fields); err != nil {
			return err
		}
		special, _ := nestedFields(d.Fields)
		if len(special) > 1 {
			names := make([]string, 0, len(special))
			for _, i := range special {
				names = append(names, d.Fields[i].Name)
			}
			return fmt.Errorf("%s: %w: %s", s.path, ErrAmbiguousWrapperField, strings.Join(names, ", "))
		}
	case param.KindPrimitive:
		return fmt.Errorf("%s: %w: primitive %q has no type definition", s.path, ErrUnresolvedFieldShape, d.Primitive)
	}
	return fmt.Errorf("%s: %w: %s", s.path, ErrUnresolvedFieldShape, unresolvedReason(d))
}

// nestedFields returns the indexes of non-primitive fields. ok is false
// when any field has an unresolvable shape.
func nestedFields(fields []param.Field) (idx []int, ok bool) {
	ok = true
	for i, f := range fields {
		switch shapeOf(f.Value) {
		case shapePrimitive:
		case shapeUnresolved:
			ok = false
		default:
			idx = append(idx, i)
		}
	}
	return idx, ok
}
