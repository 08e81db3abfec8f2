// Package envvar expands environment variable references inside configuration values.
package envvar

import (
	"os"
	"regexp"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-fallback} references.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Expand replaces ${VAR_NAME} references with their environment variable values.
// ${VAR_NAME:-fallback} yields fallback when VAR_NAME is unset or empty.
// A reference to an unset variable without a fallback expands to an empty string.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		if resolved := os.Getenv(groups[1]); resolved != "" {
			return resolved
		}

		return groups[2]
	})
}

// HasReference reports whether value contains at least one ${VAR} reference.
func HasReference(value string) bool {
	return pattern.MatchString(value)
}
