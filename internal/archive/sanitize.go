// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import "strings"

// reservedChars are the characters that cannot appear in a Windows
// path component.
const reservedChars = `<>:"/\|?*`

// maxFilenameLen caps sanitized names well under common filesystem limits.
const maxFilenameLen = 200

// SanitizeFilename converts an arbitrary title into a string safe as a
// path component on every platform. Reserved characters become
// underscores, surrounding whitespace and trailing dots are stripped,
// and the result is capped at 200 characters.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(reservedChars, r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}

	s := trimEdges(b.String())
	if runes := []rune(s); len(runes) > maxFilenameLen {
		// Truncation can expose new trailing whitespace or dots.
		s = trimEdges(string(runes[:maxFilenameLen]))
	}
	return s
}

func trimEdges(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, " \t\n\r.")
}
