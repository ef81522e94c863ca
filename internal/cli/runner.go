package cli

import (
	"fmt"
	"log"

	"github.com/seitarof/gen-xsd/internal/binding"
	"github.com/seitarof/gen-xsd/internal/generator"
	"github.com/seitarof/gen-xsd/internal/param"
	"github.com/seitarof/gen-xsd/internal/parser"
	"github.com/seitarof/gen-xsd/internal/registry"
)

// Runner orchestrates parser/binding/registry/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

// StyleLookup selects a binding style by its style/use pair.
type StyleLookup func(style, use string) (binding.Style, error)

// DescLoader reads method descriptions from a file.
type DescLoader func(path string) ([]param.Method, error)

type runnerImpl struct {
	parser    parser.Parser
	styles    StyleLookup
	loadDesc  DescLoader
	generator generator.Generator
}

// NewRunner creates a default runner implementation. A nil lookup or
// loader falls back to binding.Lookup and param.LoadYAML.
func NewRunner(p parser.Parser, styles StyleLookup, loadDesc DescLoader, g generator.Generator) Runner {
	if styles == nil {
		styles = binding.Lookup
	}
	if loadDesc == nil {
		loadDesc = param.LoadYAML
	}
	return &runnerImpl{
		parser:    p,
		styles:    styles,
		loadDesc:  loadDesc,
		generator: g,
	}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(cfg *Config) error {
	style, err := r.styles(cfg.Style, cfg.Use)
	if err != nil {
		return fmt.Errorf("binding: %w", err)
	}

	methods, err := r.collectMethods(cfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	reg := registry.New()
	for _, m := range methods {
		types, err := style.TypeParameters(m.Params...)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", m.Name, err)
		}
		if len(types) == 0 {
			log.Printf("gen-xsd: warning: %s has no complex parameters, no types declared", m.Name)
			continue
		}
		if err := reg.Add(types...); err != nil {
			return fmt.Errorf("register %s: %w", m.Name, err)
		}
	}
	if reg.Len() == 0 {
		return fmt.Errorf("no schema types to generate")
	}

	if err := r.generator.Generate(cfg, reg.Types()); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}

func (r *runnerImpl) collectMethods(cfg *Config) ([]param.Method, error) {
	if cfg.DescPath != "" {
		return r.loadDesc(cfg.DescPath)
	}

	methods := make([]param.Method, 0, len(cfg.Types)+len(cfg.Methods))
	for _, typeName := range cfg.Types {
		d, err := r.parser.Parse(cfg.SrcPath, typeName)
		if err != nil {
			return nil, err
		}
		methods = append(methods, param.Method{Name: typeName, Params: []param.Description{d}})
	}
	for _, name := range cfg.Methods {
		m, err := r.parser.ParseMethod(cfg.SrcPath, name)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}
