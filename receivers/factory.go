package receivers

import (
	"context"
	"encoding/json"
	"errors"
)

// DecryptFunc returns the decrypted value stored under key, or fallback when there is none.
type DecryptFunc func(key string, fallback string) string

// GetDecryptedValueFn is a function that returns the decrypted value of
// the given key. If the key is not present, then it returns the fallback value.
type GetDecryptedValueFn func(ctx context.Context, sjd map[string][]byte, key string, fallback string) string

// NotificationChannelConfig is a notification channel as stored by the host: the operator-entered
// settings of one integration plus the values that were moved to secure storage.
type NotificationChannelConfig struct {
	UID            string            `json:"uid" yaml:"uid"`
	Name           string            `json:"name" yaml:"name"`
	Type           string            `json:"type" yaml:"type"`
	Settings       json.RawMessage   `json:"settings" yaml:"-"`
	SecureSettings map[string][]byte `json:"secureSettings" yaml:"-"`
}

// DecryptFunc binds fn to the secure settings of the channel.
func (c *NotificationChannelConfig) DecryptFunc(ctx context.Context, fn GetDecryptedValueFn) (DecryptFunc, error) {
	if c.Settings == nil {
		return nil, errors.New("no settings supplied")
	}
	secrets := c.SecureSettings
	if secrets == nil {
		secrets = map[string][]byte{}
	}
	return func(key string, fallback string) string {
		return fn(ctx, secrets, key, fallback)
	}, nil
}

// PlainSecureSettings reads secure settings that are stored without encryption.
func PlainSecureSettings(_ context.Context, sjd map[string][]byte, key string, fallback string) string {
	if v, ok := sjd[key]; ok && len(v) > 0 {
		return string(v)
	}
	return fallback
}

// NoSecrets is a DecryptFunc for channels without secure settings.
func NoSecrets(_ string, fallback string) string {
	return fallback
}
