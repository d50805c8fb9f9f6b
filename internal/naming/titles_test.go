package naming

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComposeTitles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		titles    []string
		maxLength int
		want      string
	}{
		{
			name:      "single_fits",
			titles:    []string{"Pilot"},
			maxLength: 50,
			want:      "Pilot",
		},
		{
			name:      "join_fits",
			titles:    []string{"Alpha", "Beta"},
			maxLength: 50,
			want:      "Alpha + Beta",
		},
		{
			name:      "head_tail_ellipsis",
			titles:    []string{"First Episode", "Middle Episode", "Last Episode"},
			maxLength: 30,
			want:      "First Episode" + ellipsisMarker + "Last Episode",
		},
		{
			name:      "head_only_ellipsis",
			titles:    []string{"First Episode", "A Considerably Longer Last Episode"},
			maxLength: 20,
			want:      "First Episode" + ellipsisMarker,
		},
		{
			name:      "hard_truncation",
			titles:    []string{"An Unreasonably Long Single Episode Title"},
			maxLength: 20,
			want:      "An Unreasonably L" + ellipsisMarker,
		},
		{
			name:      "no_titles",
			titles:    nil,
			maxLength: 50,
			want:      "",
		},
		{
			name:      "no_budget",
			titles:    []string{"Pilot"},
			maxLength: 0,
			want:      "",
		},
		{
			name:      "ceiling_below_ellipsis",
			titles:    []string{"Pilot"},
			maxLength: 2,
			want:      "",
		},
		{
			name:      "ceiling_exactly_ellipsis",
			titles:    []string{"Pilot"},
			maxLength: ellipsisLength,
			want:      ellipsisMarker,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := composeTitles(tc.titles, titleJoinSeparator, tc.maxLength)
			if got != tc.want {
				t.Errorf("composeTitles(%v, %d) = %q, want %q", tc.titles, tc.maxLength, got, tc.want)
			}

			rendered := strings.ReplaceAll(got, ellipsisMarker, ellipsis)
			if len(rendered) > tc.maxLength {
				t.Errorf("composeTitles(%v, %d) rendered length %d exceeds ceiling", tc.titles, tc.maxLength, len(rendered))
			}
		})
	}
}

func TestCollapsePartTitles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{
			name:   "part_suffixes_collapse",
			titles: []string{"Stuck Part 1", "Stuck Part 2"},
			want:   []string{"Stuck"},
		},
		{
			name:   "parenthesized_parts",
			titles: []string{"Stuck (1)", "Stuck (Part 2)"},
			want:   []string{"Stuck"},
		},
		{
			name:   "pt_abbreviation",
			titles: []string{"Stuck Pt. 1", "Stuck pt 2"},
			want:   []string{"Stuck"},
		},
		{
			name:   "distinct_titles_survive",
			titles: []string{"Alpha Part 1", "Beta Part 2"},
			want:   []string{"Alpha", "Beta"},
		},
		{
			name:   "all_empty_falls_back",
			titles: []string{"Part 1", "Part 2"},
			want:   []string{"Part 1", "Part 2"},
		},
		{
			name:   "case_insensitive_dedupe",
			titles: []string{"Stuck part 1", "STUCK Part 2"},
			want:   []string{"Stuck"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, collapsePartTitles(tc.titles)); diff != "" {
				t.Errorf("collapsePartTitles(%v) mismatch (-want +got):\n%s", tc.titles, diff)
			}
		})
	}
}

func TestTruncateBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abcdef", 4, "abcd"},
		{"abcdef", 10, "abcdef"},
		{"abc def", 5, "abc d"},
		{"abc def", 4, "abc"},
		{"héllo", 2, "h"},
		{"abc", 0, ""},
	}
	for _, tc := range tests {
		if got := truncateBytes(tc.in, tc.n); got != tc.want {
			t.Errorf("truncateBytes(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}
