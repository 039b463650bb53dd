// Package cli wires configuration and terminal output for the fsutils
// commands and turns command flags into the inputs the fsutil helpers take.
package cli

import (
	"fmt"

	"github.com/zoro11031/fsutils/internal/config"
	"github.com/zoro11031/fsutils/internal/fsutil"
	"github.com/zoro11031/fsutils/internal/match"
	"github.com/zoro11031/fsutils/internal/ui"
)

// Options are the global flags shared by every command
type Options struct {
	ConfigPath     string
	NonInteractive bool
	AssumeYes      bool
}

// Context holds all dependencies needed by a command
type Context struct {
	Config *config.Config
	UI     *ui.UI
}

// NewContext creates a Context with configuration loaded and the UI set up
func NewContext(opts Options) (*Context, error) {
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(opts.NonInteractive)
	uiInstance.SetAssumeYes(opts.AssumeYes || cfg.GetBool(config.KeyAssumeYes, false))

	return &Context{
		Config: cfg,
		UI:     uiInstance,
	}, nil
}

// FindCriteria are the predicate flags accepted by the find command
type FindCriteria struct {
	Globs      []string // Matched against the path relative to the base directory
	Regexes    []string // Matched against the full path
	Extensions []string
	Exclude    []string // Globs that remove matches
}

// BuildMatcher combines the criteria into one matcher. Each kind of
// criterion is OR-ed within itself and the kinds are AND-ed together. With
// no positive criteria, the configured GLOB_PATTERN is used.
func (c *Context) BuildMatcher(baseDir string, criteria FindCriteria) (fsutil.Matcher, error) {
	globs := criteria.Globs
	if len(globs) == 0 && len(criteria.Regexes) == 0 && len(criteria.Extensions) == 0 {
		globs = []string{c.Config.GetOrDefault(config.KeyGlobPattern, "**")}
	}

	var parts []fsutil.Matcher

	if len(globs) > 0 {
		m, err := anyGlob(globs)
		if err != nil {
			return nil, err
		}
		parts = append(parts, match.Relative(baseDir, m))
	}

	if len(criteria.Regexes) > 0 {
		var regexes []fsutil.Matcher
		for _, expr := range criteria.Regexes {
			m, err := match.Regex(expr)
			if err != nil {
				return nil, err
			}
			regexes = append(regexes, m)
		}
		parts = append(parts, match.Any(regexes...))
	}

	if len(criteria.Extensions) > 0 {
		exts := make([]string, len(criteria.Extensions))
		for i, ext := range criteria.Extensions {
			if ext != "" && ext[0] != '.' {
				ext = "." + ext
			}
			exts[i] = ext
		}
		parts = append(parts, match.Suffix(exts...))
	}

	if len(criteria.Exclude) > 0 {
		m, err := anyGlob(criteria.Exclude)
		if err != nil {
			return nil, err
		}
		parts = append(parts, match.Not(match.Relative(baseDir, m)))
	}

	return match.All(parts...), nil
}

func anyGlob(patterns []string) (fsutil.Matcher, error) {
	var matchers []fsutil.Matcher
	for _, pattern := range patterns {
		m, err := match.Glob(pattern)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return match.Any(matchers...), nil
}

// TempPrefix returns the flag value when set, otherwise the configured prefix
func (c *Context) TempPrefix(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.Config.GetOrDefault(config.KeyTempPrefix, fsutil.DefaultTempFilePrefix)
}
