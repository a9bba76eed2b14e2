package compliments

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AllCategories is the filter value that selects from every category.
const AllCategories = "all"

var nonCategoryChars = regexp.MustCompile(`[^a-z0-9-]`)

// NormalizeCategory converts a free-text label into a category name. It
// lowercases, joins whitespace-separated words with hyphens and strips
// everything outside [a-z0-9-]. The result may be empty.
func NormalizeCategory(raw string) string {
	s := strings.Join(strings.Fields(strings.ToLower(raw)), "-")
	return nonCategoryChars.ReplaceAllString(s, "")
}

// CategoryLabel returns the display label for a category name, with the
// first letter upper-cased.
func CategoryLabel(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + category[size:]
}

// CategoryEmoji returns the decoration shown next to a compliment from the
// given category filter.
func CategoryEmoji(category string) string {
	switch category {
	case "study":
		return "📚✨"
	case "career":
		return "🚀💼"
	case "wellness":
		return "🌿💖"
	default:
		return "⭐️"
	}
}
