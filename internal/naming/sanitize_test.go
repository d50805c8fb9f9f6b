package naming

import (
	"testing"

	"github.com/Digital-Shane/scene-tidy/internal/config"
)

func TestReplaceColons(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		policy  config.ColonReplacement
		replace bool
		in      string
		want    string
	}{
		{"smart_with_space", config.ColonSmart, true, "Part: One", "Part - One"},
		{"smart_bare", config.ColonSmart, true, "12:30", "12-30"},
		{"delete", config.ColonDelete, true, "Part: One", "Part One"},
		{"dash", config.ColonDash, true, "Part: One", "Part- One"},
		{"space_dash", config.ColonSpaceDash, true, "Part: One", "Part - One"},
		{"space_dash_space", config.ColonSpaceDashSpace, true, "Part:One", "Part - One"},
		{"replacement_disabled_overrides_policy", config.ColonDash, false, "Part: One", "Part One"},
		{"no_colon", config.ColonSmart, true, "Plain", "Plain"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.ColonReplacement = tc.policy
			cfg.ReplaceIllegalCharacters = tc.replace
			got := CleanTokenValue(tc.in, cfg)
			if got != tc.want {
				t.Errorf("CleanTokenValue(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanTokenValueIllegalChars(t *testing.T) {
	t.Parallel()
	cfg := config.Default()

	tests := []struct {
		in   string
		want string
	}{
		{`a\b`, "a+b"},
		{`a/b`, "a+b"},
		{`a<b>c`, "abc"},
		{`what?`, "what!"},
		{`a*b`, "a-b"},
		{`a|b"c`, "abc"},
		{"a  b....c", "a b.c"},
		{"a--b__c", "a-b_c"},
	}
	for _, tc := range tests {
		if got := CleanTokenValue(tc.in, cfg); got != tc.want {
			t.Errorf("CleanTokenValue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	cfg.ReplaceIllegalCharacters = false
	if got := CleanTokenValue(`a\b?c*d`, cfg); got != "abcd" {
		t.Errorf("CleanTokenValue with replacement disabled = %q, want %q", got, "abcd")
	}
}

func TestCleanFileName(t *testing.T) {
	t.Parallel()
	cfg := config.Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim_edges", " .A Name - ", "A Name"},
		{"trailing_dots", "A Name...", "A Name"},
		{"reserved_con", "con.", "con_"},
		{"reserved_extension", "con.mkv", "con_mkv"},
		{"reserved_com_digit", "COM1.txt", "COM1_txt"},
		{"reserved_not_prefix", "icon.mkv", "icon.mkv"},
		{"reserved_no_dot", "con", "con"},
		{"plain", "My Family Pies", "My Family Pies"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanFileName(tc.in, cfg); got != tc.want {
				t.Errorf("CleanFileName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// The pipeline is relied on to be idempotent: segment cleaning re-runs over
// already-cleaned token values.
func TestCleanFileNameIdempotent(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	inputs := []string{
		`My: Show? *2024* \ pilot...`,
		"con.mkv",
		" . leading and trailing - ",
		"a  b--c__d",
	}
	for _, in := range inputs {
		once := CleanFileName(in, cfg)
		twice := CleanFileName(once, cfg)
		if once != twice {
			t.Errorf("CleanFileName not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
