package parser

import (
	"fmt"
	"log"
	"reflect"
	"sort"
	"strings"

	"go/types"
)

// fieldInfo is one exported struct field after embedded flattening.
type fieldInfo struct {
	GoName      string
	ElementName string
	ArrayName   string
	Optional    bool
	Type        types.Type
}

type fieldCandidate struct {
	field     fieldInfo
	path      string
	depth     int
	order     int
	ambiguous bool
}

// flattenFields promotes fields of embedded structs the way Go selectors do:
// the shallowest field wins and same-depth duplicates are dropped. A struct
// that embeds itself, directly or through another struct, is an error.
func flattenFields(owner string, st *types.Struct) ([]fieldInfo, error) {
	candidates := map[string]fieldCandidate{}
	order := 0
	visiting := map[*types.Struct]bool{}
	if err := collectFlattenedFields(st, nil, 0, candidates, &order, visiting); err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}

	sorted := make([]fieldCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if cand.ambiguous {
			log.Printf("gen-xsd: warning: field %q of %s is ambiguous between embedded structs, skipped", cand.field.GoName, owner)
			continue
		}
		sorted = append(sorted, cand)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].order == sorted[j].order {
			return sorted[i].field.GoName < sorted[j].field.GoName
		}
		return sorted[i].order < sorted[j].order
	})

	fields := make([]fieldInfo, 0, len(sorted))
	for _, cand := range sorted {
		fields = append(fields, cand.field)
	}
	return fields, nil
}

func collectFlattenedFields(
	st *types.Struct,
	prefix []string,
	depth int,
	out map[string]fieldCandidate,
	order *int,
	visiting map[*types.Struct]bool,
) error {
	visiting[st] = true
	defer delete(visiting, st)

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		tag, skip := parseTag(reflect.StructTag(st.Tag(i)).Get("wsdl"))
		if skip {
			continue
		}
		if f.Embedded() && tag.name == "" {
			if embedded := resolveEmbeddedStruct(f.Type()); embedded != nil {
				if visiting[embedded] {
					return fmt.Errorf("recursive type embedded through %s", strings.Join(appendPath(prefix, f.Name()), "."))
				}
				if err := collectFlattenedFields(embedded, appendPath(prefix, f.Name()), depth+1, out, order, visiting); err != nil {
					return err
				}
				continue
			}
		}
		if !f.Exported() {
			continue
		}

		field := fieldInfo{
			GoName:      f.Name(),
			ElementName: f.Name(),
			ArrayName:   f.Name(),
			Optional:    tag.optional,
			Type:        f.Type(),
		}
		if tag.name != "" {
			field.ElementName = tag.name
		}
		if tag.array != "" {
			field.ArrayName = tag.array
		}
		addCandidate(out, field, strings.Join(appendPath(prefix, f.Name()), "."), depth, order)
	}
	return nil
}

func addCandidate(out map[string]fieldCandidate, field fieldInfo, path string, depth int, order *int) {
	key := field.ElementName
	cand, exists := out[key]
	if !exists || depth < cand.depth {
		out[key] = fieldCandidate{field: field, path: path, depth: depth, order: *order}
		*order = *order + 1
		return
	}
	if depth > cand.depth {
		return
	}
	if cand.path != path {
		cand.ambiguous = true
		out[key] = cand
	}
}

func appendPath(prefix []string, part string) []string {
	next := make([]string, 0, len(prefix)+1)
	next = append(next, prefix...)
	next = append(next, part)
	return next
}

func resolveEmbeddedStruct(t types.Type) *types.Struct {
	switch v := t.(type) {
	case *types.Alias:
		return resolveEmbeddedStruct(v.Rhs())
	case *types.Named:
		if st, ok := v.Underlying().(*types.Struct); ok {
			return st
		}
	case *types.Pointer:
		return resolveEmbeddedStruct(v.Elem())
	}
	return nil
}

type fieldTag struct {
	name     string
	array    string
	optional bool
}

// parseTag reads `wsdl:"name,optional,array=Elem"`. A tag of "-" skips the
// field.
func parseTag(raw string) (fieldTag, bool) {
	if raw == "-" {
		return fieldTag{}, true
	}
	name, rest, _ := strings.Cut(raw, ",")
	tag := fieldTag{name: strings.TrimSpace(name)}
	for _, opt := range strings.Split(rest, ",") {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "optional":
			tag.optional = true
		case strings.HasPrefix(opt, "array="):
			tag.array = strings.TrimPrefix(opt, "array=")
		}
	}
	return tag, false
}
