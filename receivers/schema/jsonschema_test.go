package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONSchema(t *testing.T) {
	s := validTypeSchema()
	s.Heading = "Test settings"
	s.Description = "Sends test notifications"
	v := s.GetCurrentVersion()

	js := ToJSONSchema(s, v)

	assert.Equal(t, jsonSchemaDraft, js.Schema)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, "Test settings", js.Title)
	assert.Equal(t, "Sends test notifications", js.Description)
	assert.Equal(t, []string{"url", "token", "priority"}, js.Required)
	require.Len(t, js.Properties, 5)

	t.Run("non-empty text", func(t *testing.T) {
		p := js.Properties["url"]
		assert.Equal(t, "string", p.Type)
		require.NotNil(t, p.MinLength)
		assert.Equal(t, 1, *p.MinLength)
		assert.Nil(t, p.MaxLength)
		assert.False(t, p.WriteOnly)
	})

	t.Run("secure text", func(t *testing.T) {
		assert.True(t, js.Properties["token"].WriteOnly)
	})

	t.Run("bounded integer", func(t *testing.T) {
		p := js.Properties["priority"]
		assert.Equal(t, "integer", p.Type)
		require.NotNil(t, p.Minimum)
		require.NotNil(t, p.Maximum)
		assert.Equal(t, 1, *p.Minimum)
		assert.Equal(t, 7, *p.Maximum)
		assert.Equal(t, 4, p.Default)
	})

	t.Run("subform", func(t *testing.T) {
		p := js.Properties["proxy"]
		assert.Equal(t, "object", p.Type)
		assert.Contains(t, p.Properties, "proxy_url")
		assert.True(t, p.Properties["password"].WriteOnly)
		assert.Nil(t, p.Properties["proxy_url"].MinLength)
	})

	t.Run("optional text with default", func(t *testing.T) {
		p := js.Properties["title"]
		assert.Equal(t, "Alert", p.Default)
		assert.NotContains(t, js.Required, "title")
	})

	t.Run("version title wins over heading", func(t *testing.T) {
		v.Title = "Version title"
		assert.Equal(t, "Version title", ToJSONSchema(s, v).Title)
	})

	t.Run("encodes as JSON", func(t *testing.T) {
		data, err := json.Marshal(js)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, jsonSchemaDraft, decoded["$schema"])
		props := decoded["properties"].(map[string]any)
		priority := props["priority"].(map[string]any)
		assert.EqualValues(t, 1, priority["minimum"])
		assert.EqualValues(t, 7, priority["maximum"])
	})
}

func TestToJSONSchemaStructuralElements(t *testing.T) {
	s := IntegrationTypeSchema{Type: "x", Name: "X", CurrentVersion: V1}
	v := IntegrationSchemaVersion{
		Version: V1,
		Options: []Field{
			{PropertyName: "flag", Element: ElementTypeCheckbox},
			{PropertyName: "scopes", Element: ElementStringArray},
			{PropertyName: "headers", Element: ElementTypeKeyValueMap},
			{PropertyName: "ratio", Element: ElementTypeInput, InputType: InputTypeNumber},
			{PropertyName: "note", Element: ElementTypeTextArea},
		},
	}
	js := ToJSONSchema(s, v)

	assert.Equal(t, "boolean", js.Properties["flag"].Type)
	assert.Equal(t, "array", js.Properties["scopes"].Type)
	assert.Equal(t, "string", js.Properties["scopes"].Items.Type)
	assert.Equal(t, "object", js.Properties["headers"].Type)
	assert.Equal(t, "string", js.Properties["headers"].AdditionalProperties.Type)
	assert.Equal(t, "number", js.Properties["ratio"].Type)
	assert.Equal(t, "string", js.Properties["note"].Type)
	assert.Empty(t, js.Required)
}
