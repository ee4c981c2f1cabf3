package querylucene

import (
	"regexp"
	"strings"
)

// reservedPattern matches the Lucene special characters
//
//	+ - && || ! ( ) { } [ ] ^ " ~ * ? : \
//
// Single & and | are ordinary characters; only the doubled forms are
// operators.
var reservedPattern = regexp.MustCompile(`[-+!(){}\[\]^"~*?:\\]|&&|\|\|`)

// endingKeyword matches an upper-case boolean operator as the final word.
var endingKeyword = regexp.MustCompile(`(?:^|\s)(AND|OR|NOT)$`)

// Escape prefixes every reserved character, and every && or || pair, with a
// backslash. Matches are found left to right without overlap, so "&&&"
// becomes `\&&&`.
//
// Usage examples:
//   - Escape("-spam") returns `\-spam`
//   - Escape(`\d{10}`) returns `\\d\{10\}`
//   - Escape("this || that") returns `this \|| that`
func Escape(s string) string {
	return reservedPattern.ReplaceAllString(s, `\$0`)
}

// DowncaseEndingKeyword lowercases a trailing AND, OR or NOT so the search
// engine does not read the end of a literal as an operator.
//
//	DowncaseEndingKeyword("Me AND")  // "Me and"
//	DowncaseEndingKeyword("BRAND")   // "BRAND"
func DowncaseEndingKeyword(s string) string {
	loc := endingKeyword.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[2]] + strings.ToLower(s[loc[2]:loc[3]])
}

// Quote renders text as a string literal: escaped, with any ending keyword
// downcased, wrapped in single quotes.
func Quote(s string) string {
	return "'" + DowncaseEndingKeyword(Escape(s)) + "'"
}
