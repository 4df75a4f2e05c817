package services

import (
	"strings"
	"unicode"
)

// normalizeTitle lowercases a track title and collapses punctuation to
// single spaces so containment and token matching see clean text.
// Bracketed segments are kept: suffixes like "(Instrumental Version)"
// carry exactly the signal the scorer looks for.
func normalizeTitle(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	cleaned := cleanSeparators(strings.ToLower(input))
	return strings.Join(strings.Fields(cleaned), " ")
}

func cleanSeparators(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			out.WriteRune(' ')
			lastSpace = true
		}
	}
	return out.String()
}
