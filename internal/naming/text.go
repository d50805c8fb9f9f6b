package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Context-free text utilities shared by the token resolvers and usable by
// callers without a full render.

var (
	titleArticleRegex = regexp.MustCompile(`(?i)^(the|an|a)\s+(.+)$`)
	titleYearRegex    = regexp.MustCompile(`\s*\(((?:19|20)\d{2})\)$`)
	cleanTitleRegex   = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
	slugDashRegex     = regexp.MustCompile(`-{2,}`)
)

// TitleThe moves a leading article to the end: "The X" becomes "X, The".
func TitleThe(title string) string {
	m := titleArticleRegex.FindStringSubmatch(title)
	if m == nil {
		return title
	}
	return m[2] + ", " + m[1]
}

// TitleYear appends the year in parentheses unless the title already carries
// one or the year is unknown.
func TitleYear(title string, year int) string {
	if year == 0 || titleYearRegex.MatchString(title) {
		return title
	}
	return fmt.Sprintf("%s (%d)", title, year)
}

// TitleWithoutYear strips a trailing parenthesized year.
func TitleWithoutYear(title string) string {
	return strings.TrimSpace(titleYearRegex.ReplaceAllString(title, ""))
}

// CleanTitle expands ampersands and scrubs punctuation, keeping letters,
// digits, spaces and dashes.
func CleanTitle(title string) string {
	title = strings.ReplaceAll(title, "&", "and")
	title = cleanTitleRegex.ReplaceAllString(title, "")
	return strings.Join(strings.Fields(title), " ")
}

// SlugTitle renders a lowercase dash-separated slug of the title.
func SlugTitle(title string) string {
	slug := strings.ToLower(CleanTitle(TitleWithoutYear(title)))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugDashRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// TitleFirstCharacter returns the first letter of the title uppercased, or
// "0-9" when the title starts with a digit. Used for A-Z folder layouts.
func TitleFirstCharacter(title string) string {
	for _, r := range TitleWithoutYear(title) {
		switch {
		case unicode.IsLetter(r):
			return string(unicode.ToUpper(r))
		case unicode.IsDigit(r):
			return "0-9"
		}
	}
	return "_"
}
