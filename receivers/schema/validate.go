package schema

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

func ValidateTypeSchema(schema IntegrationTypeSchema) error {
	if schema.Type == "" {
		return errors.New("type is required")
	}
	if schema.Name == "" {
		return errors.New("name is required")
	}
	if schema.CurrentVersion == "" {
		return errors.New("current version is required")
	}
	if len(schema.Versions) == 0 {
		return errors.New("at least one version is required")
	}
	found := false
	seen := make(map[Version]struct{}, len(schema.Versions))
	for i := range schema.Versions {
		if err := ValidateSchemaVersion(schema.Versions[i]); err != nil {
			return fmt.Errorf("invalid version [%d]: %w", i, err)
		}
		if _, ok := seen[schema.Versions[i].Version]; ok {
			return fmt.Errorf("duplicate version %s", schema.Versions[i].Version)
		}
		seen[schema.Versions[i].Version] = struct{}{}
		if schema.Versions[i].Version == schema.CurrentVersion {
			found = true
		}
	}
	if !found {
		return errors.New("current version not found")
	}
	return nil
}

func ValidateSchemaVersion(version IntegrationSchemaVersion) error {
	if version.Version == "" {
		return errors.New("version is required")
	}
	if len(version.Options) == 0 {
		return errors.New("at least one option is required")
	}
	return validateOptions(version.Options)
}

func validateOptions(options []Field) error {
	names := make(map[string]struct{}, len(options))
	for idx, o := range options {
		if err := ValidateField(o); err != nil {
			return fmt.Errorf("invalid option [%d] %s: %w", idx, o.PropertyName, err)
		}
		key := strings.ToLower(o.PropertyName)
		if _, ok := names[key]; ok {
			return fmt.Errorf("invalid option [%d]: duplicate property name %s", idx, o.PropertyName)
		}
		names[key] = struct{}{}
	}
	return nil
}

func ValidateField(field Field) error {
	if field.PropertyName == "" {
		return errors.New("property name is required")
	}
	if field.Secure && len(field.SubformOptions) > 0 {
		return fmt.Errorf("secure field cannot have subform options: %s", field.PropertyName)
	}
	switch field.Kind {
	case KindShortText:
		if err := validateTextField(field); err != nil {
			return err
		}
	case KindBoundedInteger:
		if err := validateIntegerField(field); err != nil {
			return err
		}
	case "":
		if field.Text != nil || field.Integer != nil {
			return errors.New("constraints require a field kind")
		}
	default:
		return fmt.Errorf("unknown field kind %q", field.Kind)
	}
	if len(field.SubformOptions) > 0 {
		if err := validateOptions(field.SubformOptions); err != nil {
			return fmt.Errorf("invalid subform option: %w", err)
		}
	}
	return nil
}

func validateTextField(field Field) error {
	if field.Text == nil {
		return errors.New("text field must declare text constraints")
	}
	if field.Integer != nil {
		return errors.New("text field cannot declare integer constraints")
	}
	if field.Text.MaxLength < 0 {
		return fmt.Errorf("max length must not be negative, got %d", field.Text.MaxLength)
	}
	if field.Text.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", field.Text.Size)
	}
	if field.DefaultValue == nil {
		return nil
	}
	def, ok := field.DefaultValue.(string)
	if !ok {
		return fmt.Errorf("default value of a text field must be a string, got %T", field.DefaultValue)
	}
	if def == "" && !field.Text.AllowEmpty {
		return errors.New("default value must not be empty")
	}
	if field.Text.MaxLength > 0 && utf8.RuneCountInString(def) > field.Text.MaxLength {
		return fmt.Errorf("default value exceeds max length %d", field.Text.MaxLength)
	}
	return nil
}

func validateIntegerField(field Field) error {
	if field.Integer == nil {
		return errors.New("integer field must declare integer constraints")
	}
	if field.Text != nil {
		return errors.New("integer field cannot declare text constraints")
	}
	c := field.Integer
	if c.Min > c.Max {
		return fmt.Errorf("min value %d is greater than max value %d", c.Min, c.Max)
	}
	if field.DefaultValue == nil {
		return nil
	}
	def, ok := field.DefaultValue.(int)
	if !ok {
		return fmt.Errorf("default value of an integer field must be an int, got %T", field.DefaultValue)
	}
	if def < c.Min || def > c.Max {
		return fmt.Errorf("default value %d is out of range [%d, %d]", def, c.Min, c.Max)
	}
	return nil
}
