package indexer

import (
	"regexp"
	"strings"
	"unicode"
)

var functionRegex = regexp.MustCompile(`(?:function\s+|exports\.)([A-Za-z_$][\w$]*)`)

// Tokenize splits text on camelCase boundaries and on "_", "-", "/", "." and
// whitespace. Tokens are lowercased and returned once each in first-seen order.
func Tokenize(text string) []string {
	var tokens []string
	seen := make(map[string]struct{})
	var cur []rune

	flush := func() {
		if len(cur) == 0 {
			return
		}
		tok := strings.ToLower(string(cur))
		cur = cur[:0]
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && len(cur) > 0 && startsWord(runes, i):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return tokens
}

// startsWord reports whether the upper case rune at i begins a new word:
// after a lower case letter or digit, or as the last capital of an acronym.
func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// functionNames lists the functions an implementation declares or exports.
func functionNames(impl []byte) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, m := range functionRegex.FindAllSubmatch(impl, -1) {
		name := string(m[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
