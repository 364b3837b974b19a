package filter

import (
	"fmt"
	"regexp"
)

// Filter matches sensor names against a list of compiled patterns,
// either as an allowlist (only matching names are kept) or, with
// ignoreMatches set, as a denylist.
type Filter struct {
	ignoreMatches bool
	patterns      []*regexp.Regexp
}

// New compiles the given patterns into a filter.
func New(ignoreMatches bool, patterns []string) (*Filter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return &Filter{ignoreMatches: ignoreMatches, patterns: compiled}, nil
}

// ShouldKeep reports whether a sensor with the given name passes the filter.
func (f *Filter) ShouldKeep(name string) bool {
	for _, re := range f.patterns {
		if re.MatchString(name) {
			return !f.ignoreMatches
		}
	}
	return f.ignoreMatches
}

// OptionalShouldKeep is ShouldKeep with a nil filter meaning "keep everything".
func OptionalShouldKeep(f *Filter, name string) bool {
	if f == nil {
		return true
	}
	return f.ShouldKeep(name)
}
