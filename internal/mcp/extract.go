package mcp

import (
	"strings"
	"unicode"
)

// leadInPhrases are request framings that typically precede a company name.
// Matched case-insensitively, first hit wins.
var leadInPhrases = []string{
	"analyze",
	"research",
	"tell me about",
	"information on",
	"what do you know about",
	"can you analyze",
	"look up",
	"search for",
	"find information about",
	"company analysis for",
}

// corporateSuffixes are trailing words trimmed off an extracted name
var corporateSuffixes = []string{
	"company",
	"corporation",
	"inc",
	"ltd",
	"and",
	"for",
	"of",
}

// ExtractCompanyName pulls a probable company name out of free-text input
// using a deterministic heuristic, no model call involved. Returns false when
// nothing name-like is present.
//
// The heuristic tries, in order: text after a known lead-in phrase (keeping
// the leading run of capitalized words and trimming corporate suffixes), two
// consecutive capitalized words, then the first capitalized word.
func ExtractCompanyName(input string) (string, bool) {
	lower := strings.ToLower(input)

	for _, phrase := range leadInPhrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}

		rest := strings.TrimSpace(input[idx+len(phrase):])
		if rest == "" {
			return "", false
		}

		name := capitalizedRun(rest)
		if name == "" {
			name = rest
		}
		name = trimCorporateSuffixes(name)
		return name, name != ""
	}

	words := strings.Fields(input)

	// Two consecutive capitalized words might be a company name.
	for i := 0; i+1 < len(words); i++ {
		if isCapitalized(words[i]) && isCapitalized(words[i+1]) {
			return words[i] + " " + words[i+1], true
		}
	}

	for _, word := range words {
		if isCapitalized(word) {
			return word, true
		}
	}

	return "", false
}

// capitalizedRun returns the leading whitespace-separated words of s that
// start with an uppercase letter, joined by single spaces.
func capitalizedRun(s string) string {
	var run []string
	for _, word := range strings.Fields(s) {
		if !isCapitalized(word) {
			break
		}
		run = append(run, word)
	}
	return strings.Join(run, " ")
}

// trimCorporateSuffixes strips trailing filler and incorporation words.
// Each suffix is checked once, in order.
func trimCorporateSuffixes(name string) string {
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(strings.ToLower(name), " "+suffix) {
			name = strings.TrimSpace(name[:len(name)-len(suffix)-1])
		}
	}
	return name
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
