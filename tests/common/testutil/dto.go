//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap renders v as its JSON object and applies muts in order. Handler tests
// use it to send request bodies a typed DTO cannot express.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err, "request DTO must encode as JSON")
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), "request DTO must encode as a JSON object")

	for _, mutate := range muts {
		mutate(m)
	}
	return m
}

// Field sets key to value. A nil value drops the key.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
