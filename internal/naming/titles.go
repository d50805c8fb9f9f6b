package naming

import (
	"regexp"
	"strings"
)

// ellipsisMarker is the placeholder the composer emits in place of the final
// ellipsis. It must survive the illegal-character pass untouched; the path
// assembler substitutes the rendered ellipsis after segment sanitization so
// the trailing-dot trim cannot eat it.
const (
	ellipsisMarker = "{ellipsis}"
	ellipsis       = "..."
	ellipsisLength = len(ellipsis)
)

// Separators used when joining multiple episode titles.
const (
	titleJoinSeparator      = " + "
	cleanTitleJoinSeparator = " and "
)

// multiPartSuffixRegex matches trailing "(Part 2)" / "Part 2" / "Pt. 2"
// style qualifiers on episode titles.
var multiPartSuffixRegex = regexp.MustCompile(`(?i)[- ._]*(?:\((?:part[ .]*)?\d+\)|part[ .]*\d+|pt\.?[ ]*\d+)$`)

// composeTitles joins one or more episode titles under a byte ceiling,
// degrading through: full join, head+tail with ellipsis, head with ellipsis,
// single title, hard truncation.
func composeTitles(titles []string, separator string, maxLength int) string {
	titles = collapsePartTitles(titles)
	if len(titles) == 0 || maxLength <= 0 {
		return ""
	}

	joined := strings.Join(titles, separator)
	if len(joined) <= maxLength {
		return joined
	}

	first := titles[0]
	last := titles[len(titles)-1]

	if len(titles) >= 2 && len(first)+len(last)+ellipsisLength <= maxLength {
		return first + ellipsisMarker + last
	}
	if len(titles) >= 2 && len(first)+ellipsisLength <= maxLength {
		return first + ellipsisMarker
	}

	if maxLength < ellipsisLength {
		return ""
	}
	return truncateBytes(first, maxLength-ellipsisLength) + ellipsisMarker
}

// collapsePartTitles strips multi-part suffixes and de-duplicates the result,
// falling back to the uncollapsed de-duplicated set when stripping would
// empty every title.
func collapsePartTitles(titles []string) []string {
	stripped := make([]string, 0, len(titles))
	for _, title := range titles {
		if s := strings.TrimSpace(multiPartSuffixRegex.ReplaceAllString(title, "")); s != "" {
			stripped = append(stripped, s)
		}
	}
	if len(stripped) == 0 {
		return dedupeTitles(titles)
	}
	return dedupeTitles(stripped)
}

func dedupeTitles(titles []string) []string {
	var out []string
	seen := make(map[string]bool, len(titles))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		key := strings.ToLower(title)
		if title == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, title)
	}
	return out
}

// truncateBytes cuts s to at most n bytes without splitting a rune.
func truncateBytes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return strings.TrimRight(s[:n], " ")
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
