package dto

import (
	"regexp"
	"strings"
)

// Denylist of Spanish terms rejected in free-text fields.
var profanityList = []string{
	"puta",
	"puto",
	"pendejo",
	"pendeja",
	"cabron",
	"cabrón",
	"chinga",
	"chingada",
	"chingadera",
	"chingar",
	"mierda",
	"verga",
	"carajo",
	"joder",
	"coño",
	"cojones",
	"hijo de puta",
	"hija de puta",
	"mamada",
	"pinche",
	"culero",
	"culera",
	"ojete",
	"pendejada",
}

// Word-boundary matcher built once at init. Boundaries are "not a letter" so
// accented vowels and ñ count as word characters; this keeps "carabina" from
// matching on the embedded "carajo"-class substrings that a plain contains
// check would flag.
var profanityRe = buildProfanityRegexp(profanityList)

func buildProfanityRegexp(words []string) *regexp.Regexp {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(w)))
	}
	pattern := `(?:^|[^\p{L}])(?:` + strings.Join(quoted, "|") + `)(?:[^\p{L}]|$)`
	return regexp.MustCompile(pattern)
}

// IsClean reports whether text is free of denylisted terms. Matching is
// case-insensitive on whole words only. Empty text is always clean.
func IsClean(text string) bool {
	if text == "" {
		return true
	}
	return !profanityRe.MatchString(strings.ToLower(text))
}

var nonLetterRe = regexp.MustCompile(`[^a-záéíóúñ]`)

// IsCleanAggressive is the stricter obfuscation-resistant variant: it strips
// separators and collapses repeated letters before a substring check, so
// "p.u.t.a" and "putaaa" are caught. The cost is false positives on innocent
// words that contain a denylisted term ("carabina"), which is why IsClean is
// the wired default and this one is kept only as a policy alternative.
func IsCleanAggressive(text string) bool {
	if text == "" {
		return true
	}

	normalized := normalizeText(text)
	for _, word := range profanityList {
		if strings.Contains(normalized, normalizeText(word)) {
			return false
		}
	}
	return true
}

func normalizeText(text string) string {
	s := strings.ToLower(text)
	s = nonLetterRe.ReplaceAllString(s, "")

	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for i, r := range s {
		if i == 0 || r != prev {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
