// Package lang implements language tag normalization and the
// suffix-candidate chains used to map logical attributes onto
// language-qualified storage columns.
package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Normalize lowercases a language tag and collapses the "_" and "-"
// separators into "-". The result is a storage-oriented identifier, not a
// canonical BCP 47 tag: canonicalization would rewrite legacy tags (e.g.
// "iw" to "he") and silently change the column names being looked up.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.ReplaceAll(tag, "_", "-")
	return strings.ToLower(tag)
}

// Valid reports whether the supplied tag parses as a well formed BCP 47
// language tag. Used to surface configuration typos early; resolution
// itself works on any normalized tag.
func Valid(tag string) bool {
	if tag == "" {
		return false
	}
	_, err := language.Parse(Normalize(tag))
	return err == nil
}

// Subtags decomposes a tag into its ordered subtag sequence,
// e.g. "en-US" -> ["en", "us"].
func Subtags(tag string) []string {
	normalized := Normalize(tag)
	if normalized == "" {
		return nil
	}

	parts := strings.Split(normalized, "-")
	subtags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		subtags = append(subtags, part)
	}
	return subtags
}

// FieldChain builds the language-qualified column names for one attribute
// under one tag, most specific first and without any fallback,
// e.g. ("name", "en-US") -> ["name_en_us", "name_en"].
func FieldChain(attribute, tag string) []string {
	subtags := Subtags(tag)
	chain := make([]string, 0, len(subtags))
	for i := len(subtags); i > 0; i-- {
		chain = append(chain, attribute+"_"+strings.Join(subtags[:i], "_"))
	}
	return chain
}

// Candidates produces the full ordered lookup sequence for an attribute:
// the chain for the current tag, then the chain for the source tag when it
// differs, then the bare attribute name. Repeats are dropped; they cannot
// change a tried-in-order outcome but there is no reason to keep them.
func Candidates(attribute, current, source string) []string {
	names := FieldChain(attribute, current)
	if Normalize(source) != Normalize(current) {
		names = append(names, FieldChain(attribute, source)...)
	}
	names = append(names, attribute)

	seen := make(map[string]struct{}, len(names))
	candidates := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}
	return candidates
}
