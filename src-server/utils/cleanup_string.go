package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanupString normalizes user-supplied text such as event titles:
// collapses whitespace, title-cases, drops a trailing period.
func CleanupString(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = cases.Title(language.English).String(s)
	s = strings.TrimSuffix(s, ".")
	return s
}
