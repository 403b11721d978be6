// Package textutil provides text processing utilities for parallel corpus lines.
package textutil

import "strings"

// Tokens splits an already tokenized corpus line on whitespace.
// Punctuation tokens are kept; they take part in alignment like words.
func Tokens(line string, lower bool) []string {
	if lower {
		line = strings.ToLower(line)
	}
	return strings.Fields(line)
}

// TrimBOM strips a leading UTF-8 byte order mark.
func TrimBOM(line string) string {
	return strings.TrimPrefix(line, "\uFEFF")
}
