package schema

// TranslateFunc maps a source string to its localized form.
type TranslateFunc func(string) string

// Localize returns a copy of the schema with every human-readable string passed through fn.
// Property names, defaults and constraints are left untouched. The receiver is not modified.
func (s IntegrationTypeSchema) Localize(fn TranslateFunc) IntegrationTypeSchema {
	if fn == nil {
		fn = func(s string) string { return s }
	}
	tr := func(str string) string {
		if str == "" {
			return ""
		}
		return fn(str)
	}
	s = s.Clone()
	s.Name = tr(s.Name)
	s.Heading = tr(s.Heading)
	s.Description = tr(s.Description)
	s.Info = tr(s.Info)
	for i := range s.Versions {
		s.Versions[i].Title = tr(s.Versions[i].Title)
		localizeFields(s.Versions[i].Options, tr)
	}
	return s
}

// localizeFields translates fields in place.
func localizeFields(fields []Field, tr TranslateFunc) {
	for i := range fields {
		fields[i].Label = tr(fields[i].Label)
		fields[i].Description = tr(fields[i].Description)
		fields[i].Placeholder = tr(fields[i].Placeholder)
		localizeFields(fields[i].SubformOptions, tr)
	}
}
