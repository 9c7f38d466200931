package schema

import (
	"strings"
)

// IntegrationType is the identifier an integration schema is registered under.
type IntegrationType string

// Version identifies one revision of an integration's settings form.
type Version string

const (
	V1 Version = "v1"
)

type ElementType string

const (
	ElementTypeInput       ElementType = "input"
	ElementTypeTextArea    ElementType = "textarea"
	ElementTypeCheckbox    ElementType = "checkbox"
	ElementTypeSelect      ElementType = "select"
	ElementTypeKeyValueMap ElementType = "key_value_map"
	ElementTypeSubform     ElementType = "subform"
	ElementStringArray     ElementType = "string_array"
)

type InputType string

const (
	InputTypeText     InputType = "text"
	InputTypePassword InputType = "password"
	InputTypeNumber   InputType = "number"
)

// IntegrationFieldPath addresses a field, descending through subforms.
type IntegrationFieldPath []string

func NewIntegrationFieldPath(path string) IntegrationFieldPath {
	return strings.Split(path, ".")
}

func (f IntegrationFieldPath) Head() string {
	if len(f) > 0 {
		return f[0]
	}
	return ""
}

func (f IntegrationFieldPath) Tail() IntegrationFieldPath {
	if len(f) > 1 {
		return f[1:]
	}
	return nil
}

func (f IntegrationFieldPath) IsLeaf() bool {
	return len(f) == 1
}

func (f IntegrationFieldPath) String() string {
	return strings.Join(f, ".")
}

func (f IntegrationFieldPath) With(segment string) IntegrationFieldPath {
	// Copy so sibling paths built from the same parent don't share a backing array.
	p := make(IntegrationFieldPath, 0, len(f)+1)
	p = append(p, f...)
	return append(p, segment)
}

// IntegrationTypeSchema describes the settings form of one notification integration.
type IntegrationTypeSchema struct {
	Type           IntegrationType            `json:"type" yaml:"type"`
	Name           string                     `json:"name" yaml:"name"`
	Heading        string                     `json:"heading,omitempty" yaml:"heading,omitempty"`
	Description    string                     `json:"description,omitempty" yaml:"description,omitempty"`
	Info           string                     `json:"info,omitempty" yaml:"info,omitempty"`
	CurrentVersion Version                    `json:"currentVersion" yaml:"currentVersion"`
	Versions       []IntegrationSchemaVersion `json:"versions" yaml:"versions"`
}

// Clone returns a deep copy of the schema.
func (s IntegrationTypeSchema) Clone() IntegrationTypeSchema {
	if s.Versions != nil {
		versions := make([]IntegrationSchemaVersion, len(s.Versions))
		for i, v := range s.Versions {
			versions[i] = v.Clone()
		}
		s.Versions = versions
	}
	return s
}

func (s IntegrationTypeSchema) GetVersion(v Version) (IntegrationSchemaVersion, bool) {
	for _, version := range s.Versions {
		if version.Version == v {
			return version, true
		}
	}
	return IntegrationSchemaVersion{}, false
}

// GetCurrentVersion returns the version operators create new channels with.
// It panics if the schema does not contain CurrentVersion, which ValidateTypeSchema rules out.
func (s IntegrationTypeSchema) GetCurrentVersion() IntegrationSchemaVersion {
	v, ok := s.GetVersion(s.CurrentVersion)
	if !ok {
		panic("version not found for current version: " + string(s.CurrentVersion))
	}
	return v
}

func (s IntegrationTypeSchema) GetVersionByTypeAlias(alias IntegrationType) (IntegrationSchemaVersion, bool) {
	for _, version := range s.Versions {
		if version.TypeAlias != "" && strings.EqualFold(string(version.TypeAlias), string(alias)) {
			return version, true
		}
	}
	return IntegrationSchemaVersion{}, false
}

// IntegrationSchemaVersion is one revision of an integration's settings form.
type IntegrationSchemaVersion struct {
	Version   Version         `json:"version" yaml:"version"`
	TypeAlias IntegrationType `json:"typeAlias,omitempty" yaml:"typeAlias,omitempty"`
	CanCreate bool            `json:"canCreate" yaml:"canCreate"`
	Title     string          `json:"title,omitempty" yaml:"title,omitempty"`
	Options   []Field         `json:"options" yaml:"options"`
}

// Clone returns a deep copy of the version.
func (v IntegrationSchemaVersion) Clone() IntegrationSchemaVersion {
	if v.Options != nil {
		options := make([]Field, len(v.Options))
		for i, o := range v.Options {
			options[i] = o.clone()
		}
		v.Options = options
	}
	return v
}

// RequiredFields returns the property names of the top-level fields that must be set, in declaration order.
func (v IntegrationSchemaVersion) RequiredFields() []string {
	var result []string
	for _, option := range v.Options {
		if option.Required {
			result = append(result, option.PropertyName)
		}
	}
	return result
}

// FieldNames returns the top-level property names in declaration order.
func (v IntegrationSchemaVersion) FieldNames() []string {
	result := make([]string, 0, len(v.Options))
	for _, option := range v.Options {
		result = append(result, option.PropertyName)
	}
	return result
}

// Defaults returns the declared default values of the top-level fields keyed by property name.
func (v IntegrationSchemaVersion) Defaults() map[string]any {
	result := make(map[string]any)
	for _, option := range v.Options {
		if option.DefaultValue != nil {
			result[option.PropertyName] = option.DefaultValue
		}
	}
	return result
}

// GetSecretFieldsPaths returns the paths of all fields marked Secure, including those nested in subforms.
func (v IntegrationSchemaVersion) GetSecretFieldsPaths() []IntegrationFieldPath {
	return getSecretFields(nil, v.Options)
}

func getSecretFields(parent IntegrationFieldPath, options []Field) []IntegrationFieldPath {
	var result []IntegrationFieldPath
	for _, option := range options {
		path := parent.With(option.PropertyName)
		if option.Secure {
			result = append(result, path)
			continue
		}
		if len(option.SubformOptions) > 0 {
			result = append(result, getSecretFields(path, option.SubformOptions)...)
		}
	}
	return result
}

func (v IntegrationSchemaVersion) IsSecureField(path IntegrationFieldPath) bool {
	f, ok := v.GetField(path)
	return ok && f.Secure
}

// GetField looks up a field by path. Property names are matched case-insensitively.
func (v IntegrationSchemaVersion) GetField(path IntegrationFieldPath) (Field, bool) {
	return getField(path, v.Options)
}

func getField(path IntegrationFieldPath, options []Field) (Field, bool) {
	if len(path) == 0 {
		return Field{}, false
	}
	for _, option := range options {
		if !strings.EqualFold(option.PropertyName, path.Head()) {
			continue
		}
		if path.IsLeaf() {
			return option, true
		}
		return getField(path.Tail(), option.SubformOptions)
	}
	return Field{}, false
}
