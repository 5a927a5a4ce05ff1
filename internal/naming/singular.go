// Package naming maps data lake directory names to OpenAPI schema names.
package naming

import "strings"

// DefaultIrregularPlurals lists entity directories whose singular form the
// suffix rules below would get wrong or that are matched before them.
var DefaultIrregularPlurals = map[string]string{
	"candidates":    "candidate",
	"courses":       "course",
	"academicWeeks": "academicWeek",
	"students":      "student",
}

// Singularizer converts plural camelCase entity names to their singular form.
// Irregular is consulted first; suffix rules apply only when it has no entry.
type Singularizer struct {
	Irregular map[string]string
}

// NewSingularizer returns a Singularizer seeded with DefaultIrregularPlurals
// and extended (or overridden) by extra.
func NewSingularizer(extra map[string]string) *Singularizer {
	irregular := make(map[string]string, len(DefaultIrregularPlurals)+len(extra))
	for k, v := range DefaultIrregularPlurals {
		irregular[k] = v
	}
	for k, v := range extra {
		irregular[k] = v
	}
	return &Singularizer{Irregular: irregular}
}

// Singular returns the singular form of plural.
//
// Words ending in "ses" but not "eses" lose only the trailing "s", so
// "courses" needs its irregular entry and other such words ("buses") come out
// wrong. Add them to Irregular rather than changing the rule.
func (s *Singularizer) Singular(plural string) string {
	if singular, ok := s.Irregular[plural]; ok {
		return singular
	}

	switch {
	case strings.HasSuffix(plural, "ies"):
		return strings.TrimSuffix(plural, "ies") + "y"
	case strings.HasSuffix(plural, "ches"),
		strings.HasSuffix(plural, "shes"),
		strings.HasSuffix(plural, "xes"):
		return strings.TrimSuffix(plural, "es")
	case strings.HasSuffix(plural, "ses"):
		if strings.HasSuffix(plural, "eses") {
			return strings.TrimSuffix(plural, "es")
		}
		return strings.TrimSuffix(plural, "s")
	case strings.HasSuffix(plural, "s") && !strings.HasSuffix(plural, "ss"):
		return strings.TrimSuffix(plural, "s")
	}
	return plural
}

var defaultSingularizer = NewSingularizer(nil)

// Singularize applies the default rules and irregular table.
func Singularize(plural string) string {
	return defaultSingularizer.Singular(plural)
}
