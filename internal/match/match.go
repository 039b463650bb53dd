// Package match builds the path predicates handed to
// fsutil.GatherFilesThatMatchCriteria.
package match

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

// Always matches every path.
func Always() fsutil.Matcher {
	return fsutil.MatcherFunc(func(string) bool { return true })
}

// Glob matches paths against a doublestar pattern such as "**/*.go".
// Paths are converted to forward slashes before matching, so patterns are
// written with "/" on every platform.
func Glob(pattern string) (fsutil.Matcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: invalid glob pattern %q", fsutil.ErrConfiguration, pattern)
	}
	return fsutil.MatcherFunc(func(path string) bool {
		ok, err := doublestar.Match(pattern, filepath.ToSlash(path))
		return err == nil && ok
	}), nil
}

// Regex matches paths containing a match of expr.
func Regex(expr string) (fsutil.Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regular expression %q: %w", fsutil.ErrConfiguration, expr, err)
	}
	return fsutil.MatcherFunc(re.MatchString), nil
}

// Suffix matches paths ending in any of the given suffixes, e.g. ".go".
func Suffix(suffixes ...string) fsutil.Matcher {
	return fsutil.MatcherFunc(func(path string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(path, s) {
				return true
			}
		}
		return false
	})
}

// All matches when every matcher matches. No matchers matches everything.
func All(matchers ...fsutil.Matcher) fsutil.Matcher {
	return fsutil.MatcherFunc(func(path string) bool {
		for _, m := range matchers {
			if !m.Matches(path) {
				return false
			}
		}
		return true
	})
}

// Any matches when at least one matcher matches.
func Any(matchers ...fsutil.Matcher) fsutil.Matcher {
	return fsutil.MatcherFunc(func(path string) bool {
		for _, m := range matchers {
			if m.Matches(path) {
				return true
			}
		}
		return false
	})
}

// Not inverts m.
func Not(m fsutil.Matcher) fsutil.Matcher {
	return fsutil.MatcherFunc(func(path string) bool {
		return !m.Matches(path)
	})
}

// Relative matches m against each path made relative to base. Paths outside
// base never match.
func Relative(base string, m fsutil.Matcher) fsutil.Matcher {
	return fsutil.MatcherFunc(func(path string) bool {
		rel, err := filepath.Rel(base, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return false
		}
		return m.Matches(rel)
	})
}
