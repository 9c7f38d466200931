package v1

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmk-notify/alerting/receivers"
)

// Config holds the values an operator configured for a Gotify notification channel.
type Config struct {
	URL      string           `json:"url,omitempty" yaml:"url,omitempty"`
	Token    receivers.Secret `json:"token,omitempty" yaml:"token,omitempty"`
	Priority int              `json:"priority" yaml:"priority"`
	Title    string           `json:"gotify_title,omitempty" yaml:"gotify_title,omitempty"`
}

type unmarshalConfig struct {
	URL      string                   `json:"url"`
	Token    receivers.Secret         `json:"token"`
	Priority receivers.OptionalNumber `json:"priority"`
	Title    string                   `json:"gotify_title"`
}

// NewConfig decodes stored settings and fills in the declared defaults for values the
// operator has not supplied. The token is taken from secure settings when present.
// Range and emptiness checks are left to the form validator of the host.
func NewConfig(jsonData json.RawMessage, decryptFn receivers.DecryptFunc) (Config, error) {
	if len(jsonData) == 0 {
		return Config{}, errors.New("failed to unmarshal settings: no settings supplied")
	}
	raw := unmarshalConfig{}
	if err := receivers.NewSecretsMarshaller(decryptFn).Unmarshal(jsonData, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	priority, err := raw.Priority.Int(DefaultPriority)
	if err != nil {
		return Config{}, fmt.Errorf("priority must be an integer, got %q", raw.Priority.String())
	}

	settings := Config{
		URL:      raw.URL,
		Token:    raw.Token,
		Priority: priority,
		Title:    raw.Title,
	}
	if settings.Title == "" {
		settings.Title = DefaultTitle
	}
	return settings, nil
}
