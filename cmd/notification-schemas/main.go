// Command notification-schemas prints the configuration schemas of the registered notification
// integrations, optionally translated, as JSON, YAML or JSON Schema.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	cfg := parseFlags(os.Args[1:])
	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) Config {
	var cfg Config
	fs := flag.NewFlagSet(programName, flag.ExitOnError)
	fs.StringVar(&cfg.Type, "type", "", "integration type or alias to export (defaults to all)")
	fs.StringVar(&cfg.Format, "format", FormatJSON, "output format: json, yaml or jsonschema")
	fs.StringVar(&cfg.Lang, "lang", "", "language of the exported labels and help texts (e.g. de)")
	fs.StringVar(&cfg.TranslationsPath, "translations", "", "YAML file with additional translations")
	fs.StringVar(&cfg.OutPath, "out", "", "output file path (defaults to stdout)")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "print version information and exit")
	_ = fs.Parse(args)
	return cfg
}
