package generator

import (
	"bytes"
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/seitarof/gen-xsd/internal/resolver"
)

//go:embed templates/*.xsd.tmpl
var templateFS embed.FS

// Generator renders type definitions into an XSD schema file.
type Generator interface {
	Generate(cfg Config, types []resolver.TypeDefinition) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
	Namespace() string
}

// Formatter normalizes rendered schema output.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated schema to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type xmlFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Namespace string
	Types     []resolver.TypeDefinition
	Elements  []string
}

// New creates a schema generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"attr": escapeAttr,
	}).ParseFS(templateFS, "templates/*.xsd.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewXMLFormatter creates a formatter that drops blank lines and rejects
// output that is not well-formed XML.
func NewXMLFormatter() Formatter {
	return &xmlFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, types []resolver.TypeDefinition) error {
	if len(types) == 0 {
		return fmt.Errorf("no type definitions")
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "types.xsd.tmpl", buildTemplateData(cfg.Namespace(), types)); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (f *xmlFormatter) Format(filename string, src []byte) ([]byte, error) {
	var b bytes.Buffer
	remaining := string(src)
	for {
		line, rest, found := strings.Cut(remaining, "\n")
		if trimmed := strings.TrimRight(line, " \t"); strings.TrimSpace(trimmed) != "" {
			b.WriteString(trimmed)
			b.WriteString("\n")
		}
		if !found {
			break
		}
		remaining = rest
	}

	dec := xml.NewDecoder(bytes.NewReader(b.Bytes()))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}
	return b.Bytes(), nil
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

// buildTemplateData collects the names referenced by element-kind
// attributes, which need a top-level element declaration.
func buildTemplateData(namespace string, types []resolver.TypeDefinition) templateData {
	seen := map[string]bool{}
	var elements []string
	for _, td := range types {
		for _, attr := range td.ElementAttributes {
			if attr.Kind != resolver.AttributeElement {
				continue
			}
			name := strings.TrimPrefix(attr.Value, resolver.NamespacePrefix+":")
			if seen[name] {
				continue
			}
			seen[name] = true
			elements = append(elements, name)
		}
	}
	return templateData{Namespace: namespace, Types: types, Elements: elements}
}

func escapeAttr(s string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}
