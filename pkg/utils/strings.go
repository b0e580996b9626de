package utils

import (
	"strconv"
	"strings"
)

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}

// NormalizeCode uppercases and trims a coupon code for consistent display.
// Legitimacy of the code is the remote API's concern.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
