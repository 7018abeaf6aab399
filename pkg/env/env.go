package env

import (
	"os"
	"strings"
)

// Prefix namespaces every project variable.
const Prefix = "TIENDA_"

// Get returns TIENDA_<key> when set, then the bare key, then fallback.
// Blank values count as unset.
func Get(key, fallback string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return fallback
}

// Lookup reports the first non-blank value among TIENDA_<key> and key.
func Lookup(key string) (string, bool) {
	candidates := []string{key}
	if !strings.HasPrefix(key, Prefix) {
		candidates = []string{Prefix + key, key}
	}
	for _, name := range candidates {
		if val := strings.TrimSpace(os.Getenv(name)); val != "" {
			return val, true
		}
	}
	return "", false
}
