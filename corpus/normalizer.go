package corpus

import (
	"regexp"
	"strings"
)

// Historical administrative qualifiers: "X вол." (volost), "X пов." (county),
// "X гміни." (commune). Removed wherever they appear, case-insensitively.
var qualifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\p{L}+\s+вол\.`),
	regexp.MustCompile(`(?i)\p{L}+\s+пов\.`),
	regexp.MustCompile(`(?i)\p{L}+\s+гміни\.`),
}

// Settlement type abbreviations stripped from the start of a segment.
// "сс." and "м-ко." sort before their shorter counterparts so the longest
// prefix wins.
var typePrefixes = []string{"сс.", "м-ко.", "с.", "м."}

// splitPattern separates compound settlement lists: a semicolon or comma
// optionally followed by whitespace.
var splitPattern = regexp.MustCompile(`[;,]\s*`)

// NormalizeSettlements turns a raw, delimiter-separated settlement list
// into discrete candidate names. It removes administrative qualifier
// tokens, strips settlement-type prefixes at the start of each segment,
// splits on semicolons and commas, and drops empty segments.
//
// Pure and deterministic: the same input always yields the same output.
// An all-qualifier input yields an empty slice; callers must tolerate a
// parish with zero settlement candidates.
func NormalizeSettlements(raw string) []string {
	s := raw
	for _, pattern := range qualifierPatterns {
		s = pattern.ReplaceAllString(s, "")
	}

	segments := splitPattern.Split(s, -1)
	names := make([]string, 0, len(segments))
	for _, segment := range segments {
		name := strings.TrimSpace(stripTypePrefix(strings.TrimSpace(segment)))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// stripTypePrefix removes a leading settlement-type abbreviation from a
// segment. Cyrillic case pairs have equal UTF-8 width, so the fold-compared
// slice is cut by the prefix's byte length.
func stripTypePrefix(segment string) string {
	for _, prefix := range typePrefixes {
		if len(segment) >= len(prefix) && strings.EqualFold(segment[:len(prefix)], prefix) {
			return segment[len(prefix):]
		}
	}
	return segment
}
