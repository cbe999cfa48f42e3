//go:build unit || e2e

package testutil

// Field returns a mutation that sets key to value in a request map.
// A nil value removes the key, which is how validation tests drop
// required fields.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
