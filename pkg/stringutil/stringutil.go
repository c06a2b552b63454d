// Package stringutil provides utility functions for working with strings.
package stringutil

import (
	"strings"
)

// KebabCase converts a camelCase identifier to kebab-case by replacing every
// ASCII upper-case letter with '-' followed by its lower-case form.
// "fontWeight" becomes "font-weight" and "WebkitTextStroke" becomes
// "-webkit-text-stroke". Input that is already kebab-case is unchanged.
func KebabCase(s string) string {
	if !hasUpper(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func hasUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

// JoinFragments joins text fragments with single spaces, the way console
// methods join their arguments.
func JoinFragments(fragments ...string) string {
	return strings.Join(fragments, " ")
}

// Capitalize upper-cases the first ASCII letter of s.
func Capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}

// Truncate truncates a string to a maximum length, adding "..." if truncated.
// If maxLen is 3 or less, the string is truncated without "...".
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
