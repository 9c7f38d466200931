package testing

import (
	"encoding/json"

	"github.com/cmk-notify/alerting/receivers"
)

func DecryptForTesting(sjd map[string][]byte) receivers.DecryptFunc {
	return func(key string, fallback string) string {
		v, ok := sjd[key]
		if !ok {
			return fallback
		}
		return string(v)
	}
}

// ReadSecretsJSONForTesting converts a JSON object of strings to secure settings. It panics on malformed input.
func ReadSecretsJSONForTesting(raw string) map[string][]byte {
	m := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		panic(err)
	}
	result := make(map[string][]byte, len(m))
	for k, v := range m {
		result[k] = []byte(v)
	}
	return result
}
