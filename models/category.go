package models

import (
	"regexp"
	"strings"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// NewCategory derives a Category from a display name. The id is the
// lower-cased name with whitespace runs collapsed to single hyphens.
func NewCategory(name string) Category {
	return Category{
		ID:   whitespaceRuns.ReplaceAllString(strings.ToLower(name), "-"),
		Name: name,
	}
}

// DefaultCategories seeds the catalogue when storage is empty or corrupt.
func DefaultCategories() []Category {
	names := []string{
		"Tour de Snorkel",
		"Clase de Surf",
		"Paseo en Lancha",
		"Pesca Deportiva",
		"Tour Isla Iguana",
		"Avistamiento de Ballenas",
		"Cabalgata",
		"Tour de Manglares",
	}
	categories := make([]Category, 0, len(names))
	for _, n := range names {
		categories = append(categories, NewCategory(n))
	}
	return categories
}
