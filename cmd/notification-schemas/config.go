package main

import (
	"errors"
	"fmt"
	"strings"
)

const (
	FormatJSON       = "json"
	FormatYAML       = "yaml"
	FormatJSONSchema = "jsonschema"
)

// Config holds CLI inputs.
type Config struct {
	Type             string
	Format           string
	Lang             string
	TranslationsPath string
	OutPath          string
	Debug            bool
	PrintVersion     bool
}

// Validate validates the configuration and adds defaults.
func (c *Config) Validate() error {
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))
	c.Lang = strings.TrimSpace(c.Lang)

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = FormatJSON
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatJSONSchema:
	default:
		return fmt.Errorf("unsupported format %q, must be one of %s, %s, %s", c.Format, FormatJSON, FormatYAML, FormatJSONSchema)
	}

	if c.TranslationsPath != "" && c.Lang == "" {
		return errors.New("translations file given without a language to translate to")
	}
	return nil
}
