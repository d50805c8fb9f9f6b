package naming

import (
	"regexp"
	"strings"

	"github.com/Digital-Shane/scene-tidy/internal/config"
)

// TokenMatch is a single {...} placeholder occurrence decomposed into its
// parts. Prefix and Suffix are decoration that is only emitted when the token
// resolves non-empty, Separator is the word separator embedded in the token
// name, and CustomFormat is the optional per-token argument after ":".
type TokenMatch struct {
	Raw          string
	Prefix       string
	Token        string // literal-cased name from the template
	Separator    string
	CustomFormat string
	Suffix       string
}

// tokenRegex matches escaped literal braces ({{ / }}) or one token
// occurrence. Unmatched single braces are simply never matched and survive as
// literal text.
var tokenRegex = regexp.MustCompile(`\{\{|\}\}|\{(?P<prefix>[- ._\[(]*)(?P<token>[a-zA-Z0-9]+(?:(?P<separator>[- ._]+)[a-zA-Z0-9]+)*)(?::(?P<custom>[ ,a-zA-Z0-9+-]+))?(?P<suffix>[- ._)\]]*)\}`)

// tokenSeparatorRegex normalizes token names for case- and
// separator-insensitive registry lookup.
var tokenSeparatorRegex = regexp.MustCompile(`[- ._]+`)

func tokenKey(name string) string {
	return tokenSeparatorRegex.ReplaceAllString(strings.ToLower(name), " ")
}

func decomposeToken(raw string) TokenMatch {
	m := tokenRegex.FindStringSubmatch(raw)
	return TokenMatch{
		Raw:          raw,
		Prefix:       m[1],
		Token:        m[2],
		Separator:    m[3],
		CustomFormat: m[4],
		Suffix:       m[5],
	}
}

// FindTokens returns every token occurrence in a template segment, escaped
// braces excluded.
func FindTokens(segment string) []TokenMatch {
	var matches []TokenMatch
	for _, raw := range tokenRegex.FindAllString(segment, -1) {
		if raw == "{{" || raw == "}}" {
			continue
		}
		matches = append(matches, decomposeToken(raw))
	}
	return matches
}

// replaceTokens runs one matching pass over a segment. In escape mode,
// escaped braces are preserved for a later pass and braces inside resolved
// values are doubled so that pass can tell synthesized braces from template
// braces; in final mode escapes collapse to their literal brace.
func replaceTokens(segment string, resolve func(TokenMatch) resolution, cfg *config.NamingConfig, escape bool) string {
	return tokenRegex.ReplaceAllStringFunc(segment, func(raw string) string {
		if raw == "{{" || raw == "}}" {
			if escape {
				return raw
			}
			return raw[:1]
		}

		m := decomposeToken(raw)
		res := resolve(m)
		if res.deferred {
			return raw
		}
		return renderToken(m, res.value, cfg, escape)
	})
}

// renderToken applies the shared rendering rules to a resolved value: trim,
// template-driven casing, separator override, value sanitization, and
// decoration only around non-empty output.
func renderToken(m TokenMatch, value string, cfg *config.NamingConfig, escape bool) string {
	value = strings.TrimSpace(value)

	switch tokenCasing(m.Token) {
	case casingLower:
		value = strings.ToLower(value)
	case casingUpper:
		value = strings.ToUpper(value)
	}

	if m.Separator != "" && m.Separator != " " {
		value = strings.ReplaceAll(value, " ", m.Separator)
	}

	value = CleanTokenValue(value, cfg)
	if value == "" {
		return ""
	}

	if escape {
		value = strings.ReplaceAll(value, "{", "{{")
		value = strings.ReplaceAll(value, "}", "}}")
	}

	return m.Prefix + value + m.Suffix
}

type casing int

const (
	casingMixed casing = iota
	casingLower
	casingUpper
)

// tokenCasing inspects the letters of the literal token text: all lowercase
// forces lowercase output, all uppercase forces uppercase, anything else
// preserves resolver casing.
func tokenCasing(token string) casing {
	hasLower := false
	hasUpper := false
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	switch {
	case hasLower && !hasUpper:
		return casingLower
	case hasUpper && !hasLower:
		return casingUpper
	default:
		return casingMixed
	}
}
