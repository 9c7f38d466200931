package gotify

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/cmk-notify/alerting/receivers/gotify/v1"
	"github.com/cmk-notify/alerting/receivers/schema"
)

func TestSchema(t *testing.T) {
	s := Schema()
	require.NoError(t, schema.ValidateTypeSchema(s))

	assert.Equal(t, schema.IntegrationType("gotify"), Type)
	assert.Equal(t, Type, s.Type)
	assert.Equal(t, v1.Version, s.GetCurrentVersion().Version)
	assert.Len(t, s.Versions, 1)
}

func TestSchemaIsDeterministic(t *testing.T) {
	first, second := Schema(), Schema()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Schema() differs between calls (-first +second):\n%s", diff)
	}

	// Returned values must not share state.
	second.Versions[0].Options[2].Integer.Max = 10
	second.Versions[0].Options[0].Label = "changed"
	assert.Equal(t, v1.MaxPriority, Schema().Versions[0].Options[2].Integer.Max)
	assert.Equal(t, v1.MaxPriority, first.Versions[0].Options[2].Integer.Max)
	assert.Equal(t, "url", first.Versions[0].Options[0].Label)
}

func TestSchemaFieldInvariants(t *testing.T) {
	for _, v := range Schema().Versions {
		t.Run(string(v.Version), func(t *testing.T) {
			seen := map[string]struct{}{}
			for _, name := range v.FieldNames() {
				key := strings.ToLower(name)
				_, dup := seen[key]
				require.Falsef(t, dup, "duplicate field %s", name)
				seen[key] = struct{}{}
			}
			require.Subset(t, v.FieldNames(), v.RequiredFields())
			for _, f := range v.Options {
				if f.Kind != schema.KindBoundedInteger || f.DefaultValue == nil {
					continue
				}
				def := f.DefaultValue.(int)
				require.GreaterOrEqual(t, def, f.Integer.Min, f.PropertyName)
				require.LessOrEqual(t, def, f.Integer.Max, f.PropertyName)
			}
		})
	}
}
