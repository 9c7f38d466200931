package schema

// FieldKind tags the primitive value a field holds. Each kind carries its own
// constraint payload on Field: Text for KindShortText and Integer for
// KindBoundedInteger. Structural fields (checkboxes, subforms, maps) leave it empty.
type FieldKind string

const (
	KindShortText      FieldKind = "short_text"
	KindBoundedInteger FieldKind = "bounded_integer"
)

// TextConstraints restrict a KindShortText field.
type TextConstraints struct {
	// Size is the display width of the input in characters.
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
	// MaxLength limits the value length. Zero means unlimited.
	MaxLength  int  `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	AllowEmpty bool `json:"allowEmpty" yaml:"allowEmpty"`
}

// IntegerConstraints restrict a KindBoundedInteger field. Min and Max are inclusive.
type IntegerConstraints struct {
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
	Min  int `json:"min" yaml:"min"`
	Max  int `json:"max" yaml:"max"`
}

type Field struct {
	Element        ElementType         `json:"element" yaml:"element"`
	InputType      InputType           `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Label          string              `json:"label" yaml:"label"`
	Description    string              `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder    string              `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	PropertyName   string              `json:"propertyName" yaml:"propertyName"`
	Required       bool                `json:"required" yaml:"required"`
	Secure         bool                `json:"secure" yaml:"secure"`
	DefaultValue   any                 `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Kind           FieldKind           `json:"kind,omitempty" yaml:"kind,omitempty"`
	Text           *TextConstraints    `json:"text,omitempty" yaml:"text,omitempty"`
	Integer        *IntegerConstraints `json:"integer,omitempty" yaml:"integer,omitempty"`
	SubformOptions []Field             `json:"subformOptions,omitempty" yaml:"subformOptions,omitempty"`
}

// TextField declares a single-line text input.
func TextField(name, label, description string, c TextConstraints) Field {
	return Field{
		Element:      ElementTypeInput,
		InputType:    InputTypeText,
		Label:        label,
		Description:  description,
		PropertyName: name,
		Kind:         KindShortText,
		Text:         &c,
	}
}

// IntegerField declares a numeric input bounded by c.Min and c.Max.
func IntegerField(name, label, description string, c IntegerConstraints) Field {
	return Field{
		Element:      ElementTypeInput,
		InputType:    InputTypeNumber,
		Label:        label,
		Description:  description,
		PropertyName: name,
		Kind:         KindBoundedInteger,
		Integer:      &c,
	}
}

func (f Field) WithDefault(v any) Field {
	f.DefaultValue = v
	return f
}

func (f Field) AsRequired() Field {
	f.Required = true
	return f
}

// AsSecure marks the field as holding a secret. Text inputs are masked.
func (f Field) AsSecure() Field {
	f.Secure = true
	if f.Kind == KindShortText {
		f.InputType = InputTypePassword
	}
	return f
}

// clone returns a copy of f that shares no pointers or slices with it.
func (f Field) clone() Field {
	if f.Text != nil {
		t := *f.Text
		f.Text = &t
	}
	if f.Integer != nil {
		i := *f.Integer
		f.Integer = &i
	}
	if f.SubformOptions != nil {
		sub := make([]Field, len(f.SubformOptions))
		for i, o := range f.SubformOptions {
			sub[i] = o.clone()
		}
		f.SubformOptions = sub
	}
	return f
}
