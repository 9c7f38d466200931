package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestIntegrationTypeSchemaLocalize(t *testing.T) {
	s := validTypeSchema()
	s.Heading = "Settings"
	s.Description = "Sends notifications"
	s.Versions[0].Title = "Parameters"
	original := validTypeSchema()
	original.Heading = s.Heading
	original.Description = s.Description
	original.Versions[0].Title = s.Versions[0].Title

	var calls []string
	localized := s.Localize(func(str string) string {
		calls = append(calls, str)
		return strings.ToUpper(str)
	})

	t.Run("translates human readable strings", func(t *testing.T) {
		require.Equal(t, "TEST", localized.Name)
		require.Equal(t, "SETTINGS", localized.Heading)
		require.Equal(t, "SENDS NOTIFICATIONS", localized.Description)
		require.Equal(t, "PARAMETERS", localized.Versions[0].Title)
		url, ok := localized.Versions[0].GetField(IntegrationFieldPath{"url"})
		require.True(t, ok)
		require.Equal(t, "URL", url.Label)
		require.Equal(t, "SERVER ADDRESS", url.Description)
		nested, ok := localized.Versions[0].GetField(IntegrationFieldPath{"proxy", "proxy_url"})
		require.True(t, ok)
		require.Equal(t, "PROXY URL", nested.Label)
	})

	t.Run("does not translate empty strings", func(t *testing.T) {
		require.NotContains(t, calls, "")
	})

	t.Run("keeps names, defaults and constraints", func(t *testing.T) {
		require.Equal(t, s.Versions[0].FieldNames(), localized.Versions[0].FieldNames())
		require.Equal(t, s.Versions[0].RequiredFields(), localized.Versions[0].RequiredFields())
		require.Equal(t, s.Versions[0].Defaults(), localized.Versions[0].Defaults())
		require.Equal(t, s.Versions[0].Options[2].Integer, localized.Versions[0].Options[2].Integer)
		require.Equal(t, s.Type, localized.Type)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		if diff := cmp.Diff(original, s); diff != "" {
			t.Fatalf("source schema changed (-want +got):\n%s", diff)
		}
		require.NotSame(t, s.Versions[0].Options[2].Integer, localized.Versions[0].Options[2].Integer)
	})

	t.Run("nil function is the identity", func(t *testing.T) {
		if diff := cmp.Diff(s, s.Localize(nil)); diff != "" {
			t.Fatalf("identity localization changed schema (-want +got):\n%s", diff)
		}
	})
}
