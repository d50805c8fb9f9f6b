package naming

import "strings"

// languageWildcardMarker is appended when a wildcard allow-list request did
// not cover every detected language.
const languageWildcardMarker = "--"

// legacyLanguageCodes maps three-letter codes (including the bibliographic
// variants older extractors emit) to their two-letter form.
var legacyLanguageCodes = map[string]string{
	"ara": "ar",
	"ces": "cs", "cze": "cs",
	"dan": "da",
	"deu": "de", "ger": "de",
	"ell": "el", "gre": "el",
	"eng": "en",
	"fas": "fa", "per": "fa",
	"fin": "fi",
	"fra": "fr", "fre": "fr",
	"heb": "he",
	"hin": "hi",
	"hun": "hu",
	"ind": "id",
	"isl": "is", "ice": "is",
	"ita": "it",
	"jpn": "ja",
	"kor": "ko",
	"msa": "ms", "may": "ms",
	"nld": "nl", "dut": "nl",
	"nor": "no",
	"pol": "pl",
	"por": "pt",
	"ron": "ro", "rum": "ro",
	"rus": "ru",
	"slk": "sk", "slo": "sk",
	"spa": "es",
	"sqi": "sq", "alb": "sq",
	"swe": "sv",
	"tha": "th",
	"tur": "tr",
	"ukr": "uk",
	"vie": "vi",
	"zho": "zh", "chi": "zh",
}

// normalizeLanguageTags maps codes to uppercase two-letter tags, dropping
// undetermined entries and duplicates while preserving detection order.
func normalizeLanguageTags(codes []string) []string {
	var tags []string
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || code == "und" || code == "undetermined" {
			continue
		}
		if two, ok := legacyLanguageCodes[code]; ok {
			code = two
		}
		tag := strings.ToUpper(code)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// formatLanguages renders a language-list token value. The custom-format
// argument filters the detected set: a leading "-" excludes the
// dash-separated codes that follow, otherwise the argument is a
// plus-separated allow-list; a trailing "+" marks a wildcard request, which
// appends a marker when languages beyond the allow-list were detected. With
// skipEnglishOnly set, a lone EN result renders empty since native-language
// files need no tag.
func formatLanguages(codes []string, arg string, skipEnglishOnly bool) string {
	tags := normalizeLanguageTags(codes)
	arg = strings.TrimSpace(arg)

	switch {
	case strings.HasPrefix(arg, "-"):
		excluded := make(map[string]bool)
		for _, code := range strings.Split(strings.TrimPrefix(arg, "-"), "-") {
			if code != "" {
				excluded[strings.ToUpper(code)] = true
			}
		}
		var kept []string
		for _, tag := range tags {
			if !excluded[tag] {
				kept = append(kept, tag)
			}
		}
		tags = kept
	case arg != "":
		wildcard := strings.HasSuffix(arg, "+")
		allowed := make(map[string]bool)
		for _, code := range strings.Split(strings.TrimSuffix(arg, "+"), "+") {
			if code != "" {
				allowed[strings.ToUpper(code)] = true
			}
		}
		var kept []string
		for _, tag := range tags {
			if allowed[tag] {
				kept = append(kept, tag)
			}
		}
		if wildcard && len(kept) < len(tags) {
			kept = append(kept, languageWildcardMarker)
		}
		tags = kept
	}

	if skipEnglishOnly && len(tags) == 1 && tags[0] == "EN" {
		return ""
	}
	return strings.Join(tags, "+")
}
