package parser

import (
	"fmt"
	"strings"
	"unicode"

	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/seitarof/gen-xsd/internal/param"
)

// Parser builds parameter descriptions from Go declarations.
type Parser interface {
	// Parse describes the named type declared in pkgPath.
	Parse(pkgPath string, typeName string) (param.Description, error)
	// ParseMethod describes the parameters of a function ("Func") or a
	// method ("Type.Method"). context.Context parameters are skipped.
	ParseMethod(pkgPath string, name string) (param.Method, error)
}

// parserImpl caches loaded packages; it is not safe for concurrent use.
type parserImpl struct {
	cache map[string]*packages.Package
}

// New returns default parser.
func New() Parser {
	return &parserImpl{cache: map[string]*packages.Package{}}
}

func (p *parserImpl) Parse(pkgPath string, typeName string) (param.Description, error) {
	pkg, err := p.loadPackage(pkgPath)
	if err != nil {
		return param.Description{}, err
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return param.Description{}, fmt.Errorf("type %q not found in package %q", typeName, pkgPath)
	}
	if _, ok := obj.(*types.TypeName); !ok {
		return param.Description{}, fmt.Errorf("%q in package %q is not a type", typeName, pkgPath)
	}

	d, _, err := newConverter(pkg).describe(obj.Type(), typeName)
	if err != nil {
		return param.Description{}, fmt.Errorf("%s.%s: %w", pkgPath, typeName, err)
	}
	return d, nil
}

func (p *parserImpl) ParseMethod(pkgPath string, name string) (param.Method, error) {
	pkg, err := p.loadPackage(pkgPath)
	if err != nil {
		return param.Method{}, err
	}

	fn, err := lookupFunc(pkg.Types, name)
	if err != nil {
		return param.Method{}, fmt.Errorf("%s in package %q: %w", name, pkgPath, err)
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return param.Method{}, fmt.Errorf("%s in package %q has no signature", name, pkgPath)
	}

	c := newConverter(pkg)
	params := make([]param.Description, 0, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		v := sig.Params().At(i)
		if isContext(v.Type()) {
			continue
		}
		argName := v.Name()
		if argName == "" || argName == "_" {
			argName = fmt.Sprintf("arg%d", i)
		}
		d, _, err := c.describe(v.Type(), exportedName(argName))
		if err != nil {
			return param.Method{}, fmt.Errorf("%s parameter %q: %w", name, argName, err)
		}
		params = append(params, d)
	}
	return param.Method{Name: fn.Name(), Params: params}, nil
}

func (p *parserImpl) loadPackage(pkgPath string) (*packages.Package, error) {
	if cached, ok := p.cache[pkgPath]; ok {
		return cached, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedModule,
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pkgPath, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has compilation errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pkgPath)
	}
	if pkgs[0].Types == nil || pkgs[0].Types.Scope() == nil {
		return nil, fmt.Errorf("type info unavailable for package %q", pkgPath)
	}
	p.cache[pkgPath] = pkgs[0]
	return pkgs[0], nil
}

func lookupFunc(pkg *types.Package, name string) (*types.Func, error) {
	typeName, methodName, isMethod := strings.Cut(name, ".")
	if !isMethod {
		fn, ok := pkg.Scope().Lookup(name).(*types.Func)
		if !ok {
			return nil, fmt.Errorf("function not found")
		}
		return fn, nil
	}

	obj, ok := pkg.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %q not found", typeName)
	}
	sel := types.NewMethodSet(types.NewPointer(obj.Type())).Lookup(pkg, methodName)
	if sel == nil {
		return nil, fmt.Errorf("method %q not found", methodName)
	}
	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return nil, fmt.Errorf("%q is not a method", methodName)
	}
	return fn, nil
}

func isContext(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	return named.Obj().Pkg().Path() == "context" && named.Obj().Name() == "Context"
}

// converter turns go/types types into parameter descriptions. Named structs
// outside the root module are not expanded; they become primitive kinds
// named after the type so that the resolver rejects them.
type converter struct {
	pkgPath        string
	rootModulePath string
	visiting       map[string]bool
}

func newConverter(pkg *packages.Package) *converter {
	c := &converter{pkgPath: pkg.Types.Path(), visiting: map[string]bool{}}
	if pkg.Module != nil {
		c.rootModulePath = pkg.Module.Path
	}
	return c
}

// describe returns the description of t. arrayName names the element of
// array values; optional reports a pointer indirection.
func (c *converter) describe(t types.Type, arrayName string) (param.Description, bool, error) {
	switch v := t.(type) {
	case *types.Alias:
		return c.describe(v.Rhs(), arrayName)
	case *types.Basic:
		return basicDescription(v), false, nil
	case *types.Pointer:
		d, _, err := c.describe(v.Elem(), arrayName)
		return d, true, err
	case *types.Slice:
		return c.describeArray(v.Elem(), arrayName)
	case *types.Array:
		return c.describeArray(v.Elem(), arrayName)
	case *types.Named:
		return c.describeNamed(v, arrayName)
	default:
		return param.Description{}, false, fmt.Errorf("unsupported type %s", types.TypeString(t, nil))
	}
}

func (c *converter) describeArray(elem types.Type, arrayName string) (param.Description, bool, error) {
	d, _, err := c.describe(elem, arrayName)
	if err != nil {
		return param.Description{}, false, err
	}
	return param.ArrayOf(arrayName, d), false, nil
}

func (c *converter) describeNamed(v *types.Named, arrayName string) (param.Description, bool, error) {
	obj := v.Obj()
	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	switch under := v.Underlying().(type) {
	case *types.Struct:
		if !shouldRecurseNestedPackage(pkgPath, c.pkgPath, c.rootModulePath) {
			return param.Primitive(param.PrimitiveKind(types.TypeString(v, nil))), false, nil
		}
		return c.describeStruct(pkgPath, obj.Name(), under)
	case *types.Slice:
		return c.describeArray(under.Elem(), obj.Name())
	case *types.Array:
		return c.describeArray(under.Elem(), obj.Name())
	default:
		return c.describe(under, arrayName)
	}
}

func (c *converter) describeStruct(pkgPath, name string, st *types.Struct) (param.Description, bool, error) {
	key := pkgPath + "." + name
	if c.visiting[key] {
		return param.Description{}, false, fmt.Errorf("recursive type %s", key)
	}
	c.visiting[key] = true
	defer delete(c.visiting, key)

	infos, err := flattenFields(name, st)
	if err != nil {
		return param.Description{}, false, err
	}
	fields := make([]param.Field, 0, len(infos))
	for _, f := range infos {
		d, optional, err := c.describe(f.Type, f.ArrayName)
		if err != nil {
			return param.Description{}, false, fmt.Errorf("%s.%s: %w", name, f.GoName, err)
		}
		fields = append(fields, param.Field{Name: f.ElementName, Optional: f.Optional || optional, Value: d})
	}
	return param.Object(name, fields...), false, nil
}

func basicDescription(b *types.Basic) param.Description {
	info := b.Info()
	switch {
	case info&types.IsString != 0:
		return param.Primitive(param.PrimitiveString)
	case info&types.IsInteger != 0:
		return param.Primitive(param.PrimitiveInt)
	default:
		return param.Primitive(param.PrimitiveKind(b.Name()))
	}
}

func shouldRecurseNestedPackage(nestedPkgPath, currentPkgPath, rootModulePath string) bool {
	if nestedPkgPath == "" {
		return false
	}
	if nestedPkgPath == currentPkgPath {
		return true
	}
	if rootModulePath == "" {
		return false
	}
	return nestedPkgPath == rootModulePath || strings.HasPrefix(nestedPkgPath, rootModulePath+"/")
}

// exportedName upper-cases the first letter of each word, dropping
// separators: "user_names" -> "UserNames".
func exportedName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}
