package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/seitarof/gen-xsd/internal/binding"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	var typesRaw, methodsRaw string

	fs := pflag.NewFlagSet("gen-xsd", pflag.ContinueOnError)
	fs.StringVar(&cfg.SrcPath, "src-path", "", "source package path")
	fs.StringVarP(&typesRaw, "types", "t", "", "comma-separated parameter types to describe")
	fs.StringVarP(&methodsRaw, "methods", "m", "", "comma-separated functions or Type.Method names")
	fs.StringVar(&cfg.DescPath, "desc", "", "YAML method description file")
	fs.StringVar(&cfg.TargetNamespace, "target-namespace", DefaultNamespace, "schema target namespace")
	fs.StringVar(&cfg.Style, "style", binding.StyleRPC, "binding style")
	fs.StringVar(&cfg.Use, "use", binding.UseEncoded, "binding use")
	fs.StringVarP(&cfg.Filename, "filename", "o", "", "output file name")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	cfg.Types = splitCommaList(typesRaw)
	cfg.Methods = splitCommaList(methodsRaw)

	hasSrc := strings.TrimSpace(cfg.SrcPath) != ""
	hasNames := len(cfg.Types) > 0 || len(cfg.Methods) > 0
	hasDesc := strings.TrimSpace(cfg.DescPath) != ""
	switch {
	case hasDesc && (hasSrc || hasNames):
		return nil, fmt.Errorf("--desc cannot be combined with --src-path, --types or --methods")
	case !hasDesc && !hasSrc:
		return nil, fmt.Errorf("one of --src-path or --desc is required")
	case hasSrc && !hasNames:
		return nil, fmt.Errorf("--types or --methods is required with --src-path")
	}
	if strings.TrimSpace(cfg.TargetNamespace) == "" {
		return nil, fmt.Errorf("--target-namespace must not be empty")
	}
	if strings.TrimSpace(cfg.Filename) == "" {
		return nil, fmt.Errorf("--filename is required")
	}
	return cfg, nil
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
