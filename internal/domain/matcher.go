// Package domain implements the animation property search.
package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const wildcard = "*"

// Matcher tests property names against a compiled property query.
type Matcher interface {
	// Match reports whether name satisfies the query.
	Match(name string) bool
	// Pattern returns the query the matcher was compiled from.
	Pattern() string
	// IsWildcard reports whether the query used * wildcards.
	IsWildcard() bool
}

// CompilePattern builds a Matcher for query.
//
// A query without "*" is a case-insensitive substring test. A query with
// one or more "*" is a case-insensitive match against the whole name, where
// "*" stands for any sequence of characters and everything else is literal.
// Compile once per search and reuse the matcher for every binding.
func CompilePattern(query string) Matcher {
	if !strings.Contains(query, wildcard) {
		return substringMatcher{query: query, needle: strings.ToLower(query)}
	}

	// regexp rejects invalid UTF-8; it decodes such bytes in names as U+FFFD.
	parts := strings.Split(strings.ToValidUTF8(query, string(utf8.RuneError)), wildcard)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}

	re, err := regexp.Compile("(?is)^" + strings.Join(parts, ".*") + "$")
	if err != nil {
		return wildcardMatcher{query: query}
	}

	return wildcardMatcher{query: query, re: re}
}

type substringMatcher struct {
	query  string
	needle string
}

func (s substringMatcher) Match(name string) bool {
	return strings.Contains(strings.ToLower(name), s.needle)
}

func (s substringMatcher) Pattern() string  { return s.query }
func (s substringMatcher) IsWildcard() bool { return false }

type wildcardMatcher struct {
	query string
	re    *regexp.Regexp
}

func (w wildcardMatcher) Match(name string) bool {
	if w.re == nil {
		return false
	}

	return w.re.MatchString(name)
}

func (w wildcardMatcher) Pattern() string  { return w.query }
func (w wildcardMatcher) IsWildcard() bool { return true }
