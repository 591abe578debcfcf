package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title normalizes names and vocabulary entries to titlecase, e.g.
// "cardiovascular" -> "Cardiovascular". Casers are stateful, so one is
// built per call rather than shared.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
