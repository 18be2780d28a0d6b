package corpus

import (
	"strings"
	"unicode"
)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new tokenizer with the given stopword list
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into normalized tokens, removing stopwords.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				word := t.processToken(current.String())
				if word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		word := t.processToken(current.String())
		if word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// processToken applies cleaning and stopword filtering.
func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if word == "" || len(word) <= 1 {
		return ""
	}

	// Pure-numeric tokens carry little collocation signal; mixed
	// tokens like "gpt-4" or "utf-8" are kept.
	if isNumericOnly(word) {
		return ""
	}

	if _, ok := t.stopwords[word]; ok {
		return ""
	}

	return word
}

// cleanToken strips leading/trailing hyphens and collapses runs of hyphens
func cleanToken(token string) string {
	token = strings.Trim(token, "-")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	return token
}

// isNumericOnly returns true if the token contains only digits and hyphens.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
