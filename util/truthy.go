package util

import "strings"

// Truthy reports whether an env-style string value means "enabled".
func Truthy(s string) bool {
	normalized := strings.ToLower(strings.Trim(s, " "))
	return normalized == "true" || normalized == "1" || normalized == "yes"
}
