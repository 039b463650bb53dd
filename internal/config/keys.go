package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Temporary files
	KeyTempPrefix = "TEMP_PREFIX"

	// Line reading and comparison
	KeyTrimWhitespace = "TRIM_WHITESPACE"

	// Discovery
	KeyGlobPattern = "GLOB_PATTERN" // Used by find when no predicate flag is given

	// Patch output
	KeyDiffContext = "DIFF_CONTEXT" // Context lines for unified output

	// Prompts
	KeyAssumeYes = "ASSUME_YES"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyTempPrefix:     "tempFile",
	KeyTrimWhitespace: "false",
	KeyGlobPattern:    "**",
	KeyDiffContext:    "3",
	KeyAssumeYes:      "false",
}

// Known reports whether key is one of the recognised configuration keys
func Known(key string) bool {
	_, ok := Defaults[key]
	return ok
}
