package naming

import (
	"regexp"
	"strings"

	"github.com/Digital-Shane/scene-tidy/internal/config"
)

// Character substitutions for names illegal on common target filesystems.
// Order matters: colon handling runs first (policy driven), then these.
var illegalCharReplacements = []struct {
	old string
	new string
}{
	{`\`, "+"},
	{`/`, "+"},
	{`<`, ""},
	{`>`, ""},
	{`?`, "!"},
	{`*`, "-"},
	{`|`, ""},
	{`"`, ""},
}

var (
	repeatedSpaceRegex      = regexp.MustCompile(` {2,}`)
	repeatedDotRegex        = regexp.MustCompile(`\.{2,}`)
	repeatedDashRegex       = regexp.MustCompile(`-{2,}`)
	repeatedUnderscoreRegex = regexp.MustCompile(`_{2,}`)

	// Windows reserved device names; the dot following the reserved stem is
	// rewritten so the name stops matching while the extension survives.
	reservedDeviceNameRegex = regexp.MustCompile(`(?i)^(CON|PRN|AUX|NUL|COM[1-9]|LPT[1-9])\.`)
)

// CleanTokenValue sanitizes a resolved token value: colon policy, illegal
// character substitution, and separator-run collapsing. Edge trimming and
// reserved-name rewriting are segment-shape concerns left to CleanFileName.
func CleanTokenValue(value string, cfg *config.NamingConfig) string {
	value = replaceColons(value, cfg)
	value = replaceIllegalChars(value, cfg)
	return collapseSeparatorRuns(value)
}

// CleanFileName runs the full sanitizer pipeline over an assembled path
// segment. The pipeline is idempotent: cleaning already-clean text is a
// no-op.
func CleanFileName(name string, cfg *config.NamingConfig) string {
	name = replaceColons(name, cfg)
	name = replaceIllegalChars(name, cfg)
	name = collapseSeparatorRuns(name)
	// Reserved-name rewrite runs before edge trimming: the trailing trim
	// would otherwise eat the dot ("con." must become "con_", not "con").
	name = reservedDeviceNameRegex.ReplaceAllString(name, "${1}_")
	name = strings.TrimLeft(name, " .")
	return strings.TrimRight(name, " .-")
}

func replaceColons(s string, cfg *config.NamingConfig) string {
	if !strings.Contains(s, ":") {
		return s
	}
	if !cfg.ReplaceIllegalCharacters {
		return strings.ReplaceAll(s, ":", "")
	}
	switch cfg.ColonReplacement {
	case config.ColonDash:
		return strings.ReplaceAll(s, ":", "-")
	case config.ColonSpaceDash:
		return strings.ReplaceAll(s, ":", " -")
	case config.ColonSpaceDashSpace:
		return strings.ReplaceAll(s, ":", " - ")
	case config.ColonSmart:
		s = strings.ReplaceAll(s, ": ", " - ")
		return strings.ReplaceAll(s, ":", "-")
	default:
		return strings.ReplaceAll(s, ":", "")
	}
}

func replaceIllegalChars(s string, cfg *config.NamingConfig) string {
	for _, r := range illegalCharReplacements {
		if cfg.ReplaceIllegalCharacters {
			s = strings.ReplaceAll(s, r.old, r.new)
		} else {
			s = strings.ReplaceAll(s, r.old, "")
		}
	}
	return s
}

// collapseSeparatorRuns collapses runs of the same separator character to a
// single instance. Mixed runs (".-") are left alone.
func collapseSeparatorRuns(s string) string {
	s = repeatedSpaceRegex.ReplaceAllString(s, " ")
	s = repeatedDotRegex.ReplaceAllString(s, ".")
	s = repeatedDashRegex.ReplaceAllString(s, "-")
	return repeatedUnderscoreRegex.ReplaceAllString(s, "_")
}
