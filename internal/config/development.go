package config

import (
	"os"
	"strings"
)

// Development is true for any DEVELOPMENT value except "", "0" and "false".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(development)) {
	case "", "0", "false":
		return false
	}
	return true
}
