package schema

const jsonSchemaDraft = "http://json-schema.org/draft-07/schema#"

// JSONSchema is the subset of JSON Schema used to describe integration settings to hosts
// that validate or render forms from a standard document.
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Type        string                 `json:"type" yaml:"type"`
	Title       string                 `json:"title,omitempty" yaml:"title,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string               `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any                    `json:"default,omitempty" yaml:"default,omitempty"`
	MinLength   *int                   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   *int                   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Minimum     *int                   `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *int                   `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	WriteOnly   bool                   `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty" yaml:"items,omitempty"`
	// AdditionalProperties is only set for key-value maps.
	AdditionalProperties *JSONSchema `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

// ToJSONSchema renders the settings of an integration version as a JSON Schema object.
func ToJSONSchema(s IntegrationTypeSchema, v IntegrationSchemaVersion) *JSONSchema {
	root := objectSchema(v.Options)
	root.Schema = jsonSchemaDraft
	root.Title = s.Heading
	if v.Title != "" {
		root.Title = v.Title
	}
	root.Description = s.Description
	return root
}

func objectSchema(options []Field) *JSONSchema {
	obj := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema, len(options)),
	}
	for _, f := range options {
		obj.Properties[f.PropertyName] = fieldSchema(f)
		if f.Required {
			obj.Required = append(obj.Required, f.PropertyName)
		}
	}
	return obj
}

func fieldSchema(f Field) *JSONSchema {
	var p *JSONSchema
	switch {
	case f.Kind == KindShortText && f.Text != nil:
		p = &JSONSchema{Type: "string"}
		if !f.Text.AllowEmpty {
			p.MinLength = intPtr(1)
		}
		if f.Text.MaxLength > 0 {
			p.MaxLength = intPtr(f.Text.MaxLength)
		}
	case f.Kind == KindBoundedInteger && f.Integer != nil:
		p = &JSONSchema{
			Type:    "integer",
			Minimum: intPtr(f.Integer.Min),
			Maximum: intPtr(f.Integer.Max),
		}
	case f.Element == ElementTypeSubform:
		p = objectSchema(f.SubformOptions)
	case f.Element == ElementTypeCheckbox:
		p = &JSONSchema{Type: "boolean"}
	case f.Element == ElementStringArray:
		p = &JSONSchema{Type: "array", Items: &JSONSchema{Type: "string"}}
	case f.Element == ElementTypeKeyValueMap:
		p = &JSONSchema{Type: "object", AdditionalProperties: &JSONSchema{Type: "string"}}
	case f.InputType == InputTypeNumber:
		p = &JSONSchema{Type: "number"}
	default:
		p = &JSONSchema{Type: "string"}
	}
	p.Title = f.Label
	p.Description = f.Description
	p.Default = f.DefaultValue
	p.WriteOnly = f.Secure
	return p
}

func intPtr(i int) *int {
	return &i
}
