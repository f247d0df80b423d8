// Package escape implements the string transforms between the shell quoting
// found in build traces and the quoting make expects. All transforms are pure
// and order-sensitive: the per-field composition order is part of the
// translator's contract.
package escape

import "strings"

// Escape prefixes every occurrence of a character in specials with a backslash.
func Escape(specials, s string) string {
	if !strings.ContainsAny(s, specials) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(specials, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Unescape removes a backslash immediately preceding a character in specials.
// Backslashes in front of other characters are preserved.
func Unescape(specials, s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte(specials, s[i+1]) >= 0 {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// UnescapeAll removes a backslash preceding any character.
func UnescapeAll(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Dollar rewrites every backslash-escaped dollar sign into make's own
// expansion escape: `\$` becomes `$$`.
func Dollar(s string) string {
	return strings.ReplaceAll(s, `\$`, "$$")
}

// Shell makes a path safe to place unquoted as a makefile target or
// prerequisite token: parentheses are backslash-escaped, then escaped
// dollars are doubled.
func Shell(s string) string {
	return Dollar(Escape("()", s))
}
