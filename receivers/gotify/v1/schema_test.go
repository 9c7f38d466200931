package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmk-notify/alerting/receivers/schema"
)

func TestSchema(t *testing.T) {
	v := Schema()
	require.NoError(t, schema.ValidateSchemaVersion(v))

	assert.Equal(t, schema.V1, v.Version)
	assert.True(t, v.CanCreate)
	assert.Equal(t, "Create notification with the following parameters", v.Title)
	assert.Equal(t, []string{FieldURL, FieldToken, FieldPriority, FieldTitle}, v.FieldNames())
	assert.Equal(t, []string{FieldURL, FieldToken, FieldPriority}, v.RequiredFields())
	assert.Equal(t, map[string]any{FieldPriority: DefaultPriority, FieldTitle: DefaultTitle}, v.Defaults())
	assert.Equal(t, []schema.IntegrationFieldPath{{FieldToken}}, v.GetSecretFieldsPaths())

	t.Run("url", func(t *testing.T) {
		f, ok := v.GetField(schema.IntegrationFieldPath{FieldURL})
		require.True(t, ok)
		assert.Equal(t, schema.KindShortText, f.Kind)
		assert.Equal(t, schema.InputTypeText, f.InputType)
		assert.True(t, f.Required)
		assert.Equal(t, &schema.TextConstraints{Size: 46}, f.Text)
		assert.Nil(t, f.DefaultValue)
	})

	t.Run("token", func(t *testing.T) {
		f, ok := v.GetField(schema.IntegrationFieldPath{FieldToken})
		require.True(t, ok)
		assert.Equal(t, schema.KindShortText, f.Kind)
		assert.Equal(t, schema.InputTypePassword, f.InputType)
		assert.True(t, f.Required)
		assert.True(t, f.Secure)
		assert.False(t, f.Text.AllowEmpty)
		assert.Equal(t, 24, f.Text.Size)
	})

	t.Run("priority", func(t *testing.T) {
		f, ok := v.GetField(schema.IntegrationFieldPath{FieldPriority})
		require.True(t, ok)
		assert.Equal(t, schema.KindBoundedInteger, f.Kind)
		assert.Equal(t, schema.InputTypeNumber, f.InputType)
		assert.True(t, f.Required)
		require.NotNil(t, f.Integer)
		assert.Equal(t, 1, f.Integer.Min)
		assert.Equal(t, 7, f.Integer.Max)
		def, ok := f.DefaultValue.(int)
		require.True(t, ok)
		assert.Equal(t, 4, def)
		assert.LessOrEqual(t, f.Integer.Min, def)
		assert.LessOrEqual(t, def, f.Integer.Max)
		assert.Contains(t, f.Description, "High (7), Normal (4-7), Low (1-3) and Minimum priority (1)")
	})

	t.Run("gotify_title", func(t *testing.T) {
		f, ok := v.GetField(schema.IntegrationFieldPath{FieldTitle})
		require.True(t, ok)
		assert.Equal(t, schema.KindShortText, f.Kind)
		assert.False(t, f.Required)
		assert.False(t, f.Secure)
		assert.Equal(t, "CheckMK", f.DefaultValue)
		assert.Equal(t, "Gotify Title", f.Label)
	})
}
