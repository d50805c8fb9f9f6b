package naming

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzePatternEpisodeFormats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pattern string
		want    []EpisodeFormat
	}{
		{
			name:    "standard",
			pattern: "S{season:00}E{episode:00}",
			want: []EpisodeFormat{
				{
					SeasonEpisodePattern: "{season:00}E{episode:00}",
					EpisodePattern:       "E{episode:00}",
					EpisodeToken:         "{episode:00}",
					Separator:            "E",
					SeparatorClass:       "e",
					Index:                1,
				},
			},
		},
		{
			name:    "x_style",
			pattern: "{season}x{episode:00}",
			want: []EpisodeFormat{
				{
					SeasonEpisodePattern: "{season}x{episode:00}",
					EpisodePattern:       "x{episode:00}",
					EpisodeToken:         "{episode:00}",
					Separator:            "x",
					SeparatorClass:       "x",
					Index:                1,
				},
			},
		},
		{
			name:    "mixed_schemes",
			pattern: "S{season:00}E{episode:00} ({season}x{episode:00})",
			want: []EpisodeFormat{
				{
					SeasonEpisodePattern: "{season:00}E{episode:00}",
					EpisodePattern:       "E{episode:00}",
					EpisodeToken:         "{episode:00}",
					Separator:            "E",
					SeparatorClass:       "e",
					Index:                1,
				},
				{
					SeasonEpisodePattern: "{season}x{episode:00}",
					EpisodePattern:       "x{episode:00}",
					EpisodeToken:         "{episode:00}",
					Separator:            "x",
					SeparatorClass:       "x",
					Index:                2,
				},
			},
		},
		{
			name:    "no_numbering",
			pattern: "{Site Title} - {Release Date}",
			want:    nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := analyzePattern(tc.pattern)
			if diff := cmp.Diff(tc.want, got.EpisodeFormats); diff != "" {
				t.Errorf("analyzePattern(%q) formats mismatch (-want +got):\n%s", tc.pattern, diff)
			}
		})
	}
}

func TestAnalyzePatternFlags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pattern        string
		wantIdentifier bool
		wantTitle      bool
	}{
		{"S{season:00}E{episode:00} - {Episode Title}", true, true},
		{"{Site Title} - {Release Date}", true, false},
		{"{Site Title} - {Episode CleanTitle}", false, true},
		{"{Site Title}", false, false},
	}
	for _, tc := range tests {
		got := analyzePattern(tc.pattern)
		if got.HasEpisodeIdentifier != tc.wantIdentifier {
			t.Errorf("analyzePattern(%q).HasEpisodeIdentifier = %t, want %t", tc.pattern, got.HasEpisodeIdentifier, tc.wantIdentifier)
		}
		if got.RequiresEpisodeTitle != tc.wantTitle {
			t.Errorf("analyzePattern(%q).RequiresEpisodeTitle = %t, want %t", tc.pattern, got.RequiresEpisodeTitle, tc.wantTitle)
		}
	}
}

func TestPatternCacheReturnsSameEntry(t *testing.T) {
	t.Parallel()
	c := NewPatternCache()
	first := c.Info("S{season:00}E{episode:00}")
	second := c.Info("S{season:00}E{episode:00}")
	if first != second {
		t.Error("PatternCache.Info() returned distinct entries for the same pattern")
	}
}

func TestPatternCacheConcurrent(t *testing.T) {
	t.Parallel()
	c := NewPatternCache()
	patterns := []string{
		"S{season:00}E{episode:00} - {Episode Title}",
		"{Site Title} - {Release Date}",
		"{season}x{episode:00}",
	}

	results := make([][]*PatternInfo, 16)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, p := range patterns {
				results[i] = append(results[i], c.Info(p))
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		for j := range patterns {
			if results[i][j] != results[0][j] {
				t.Fatalf("goroutine %d saw a different cache entry for %q", i, patterns[j])
			}
		}
	}
}
