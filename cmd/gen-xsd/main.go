package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seitarof/gen-xsd/internal/binding"
	"github.com/seitarof/gen-xsd/internal/cli"
	"github.com/seitarof/gen-xsd/internal/generator"
	"github.com/seitarof/gen-xsd/internal/param"
	"github.com/seitarof/gen-xsd/internal/parser"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	p := parser.New()
	f := generator.NewXMLFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)

	runner := cli.NewRunner(p, binding.Lookup, param.LoadYAML, g)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
