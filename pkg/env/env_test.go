package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPrefersPrefixedKey(t *testing.T) {
	t.Setenv("TIENDA_LOG_FORMAT", "console")
	t.Setenv("LOG_FORMAT", "json")
	assert.Equal(t, "console", Get("LOG_FORMAT", "fallback"))
}

func TestGetFallsBackToBareKey(t *testing.T) {
	t.Setenv("TIENDA_LOG_FORMAT", "  ")
	t.Setenv("LOG_FORMAT", "json")
	assert.Equal(t, "json", Get("LOG_FORMAT", "fallback"))
}

func TestGetFallback(t *testing.T) {
	t.Setenv("TIENDA_SOMETHING_UNSET", "")
	t.Setenv("SOMETHING_UNSET", "")
	assert.Equal(t, "fallback", Get("SOMETHING_UNSET", "fallback"))

	_, ok := Lookup("SOMETHING_UNSET")
	assert.False(t, ok)
}

func TestLookupDoesNotDoublePrefix(t *testing.T) {
	t.Setenv("TIENDA_APP_PORT", "4100")
	val, ok := Lookup("TIENDA_APP_PORT")
	assert.True(t, ok)
	assert.Equal(t, "4100", val)
}
