package instance

import (
	"os"
	"strings"
)

// GetID returns an identifier for this process instance: the platform dyno or
// instance id when set, then the hostname, then "local".
func GetID() string {
	for _, key := range []string{"DYNO", "INSTANCE_ID"} {
		if id := strings.TrimSpace(os.Getenv(key)); id != "" {
			return id
		}
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
