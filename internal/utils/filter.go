package utils

import "strings"

// IsLowerASCII reports whether b is in a-z.
func IsLowerASCII(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsValidInput checks if input should be sent to the dictionary.
// Only non-empty strings of a-z pass; anything else can never match a stored word.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsLowerASCII(s[i]) {
			return false
		}
	}
	return true
}

// NormalizeInput trims surrounding whitespace and lowercases s.
func NormalizeInput(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
