package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_KEY", "secret-value")

	t.Run("expands known variable", func(t *testing.T) {
		out := ExpandEnv([]byte("key: {{.EXPAND_TEST_KEY}}"))
		assert.Equal(t, "key: secret-value", string(out))
	})

	t.Run("missing variable expands empty", func(t *testing.T) {
		out := ExpandEnv([]byte("key: '{{.EXPAND_TEST_DOES_NOT_EXIST}}'"))
		assert.Equal(t, "key: ''", string(out))
	})

	t.Run("dollar signs pass through", func(t *testing.T) {
		out := ExpandEnv([]byte(`pattern: "^secret.*$"`))
		assert.Equal(t, `pattern: "^secret.*$"`, string(out))
	})

	t.Run("malformed template returns original", func(t *testing.T) {
		in := []byte("key: {{.UNCLOSED")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
