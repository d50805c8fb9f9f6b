package naming

import (
	"regexp"
	"strconv"
	"sync"

	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

// EpisodeFormat describes one season/episode numbering sub-pattern occurrence
// extracted from a template, e.g. "{season:00}E{episode:00}" inside
// "S{season:00}E{episode:00}".
type EpisodeFormat struct {
	// SeasonEpisodePattern is the raw combined sub-pattern text.
	SeasonEpisodePattern string
	// EpisodePattern is the episode half including its separator ("E{episode:00}").
	EpisodePattern string
	// EpisodeToken is the bare episode token ("{episode:00}").
	EpisodeToken string
	// Separator is the matched separator text between season and episode digits.
	Separator string
	// SeparatorClass is the separator's character class, "e" or "x".
	SeparatorClass string
	// Index is the 1-based ordinal used for the synthesized placeholder token.
	Index int
}

// PlaceholderToken returns the synthesized token name this occurrence is
// replaced with in the template ("Season Episode1", "Season Episode2", ...).
func (f EpisodeFormat) PlaceholderToken() string {
	return "Season Episode" + strconv.Itoa(f.Index)
}

// PatternInfo holds the derived facts about one template string.
type PatternInfo struct {
	EpisodeFormats []EpisodeFormat
	// HasEpisodeIdentifier reports whether the template already encodes some
	// episode-identifying information (numbering sub-pattern or release date).
	HasEpisodeIdentifier bool
	// RequiresEpisodeTitle reports whether rendering the template needs
	// episode-title metadata to be present.
	RequiresEpisodeTitle bool
}

var seasonEpisodeSubPatternRegex = regexp.MustCompile(`(?i)\{season(?::0+)?\}(?P<separator>[- ._]?[ex])(?P<episode>\{episode(?::0+)?\})`)

// PatternCache memoizes pattern analysis keyed by the literal template text.
// Entries are only ever added, never evicted: the key space is bounded by
// user-authored configuration, not data volume. Lookups are lock-free on the
// hot path; misses coalesce on a single mutex so each key is computed once.
type PatternCache struct {
	mu   sync.Mutex
	info *csmap.CsMap[string, *PatternInfo]
}

// NewPatternCache creates an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{
		info: csmap.Create[string, *PatternInfo](),
	}
}

// Info returns the derived facts for a template, computing and storing them
// on first use.
func (c *PatternCache) Info(pattern string) *PatternInfo {
	if v, ok := c.info.Load(pattern); ok {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.info.Load(pattern); ok {
		return v
	}
	v := analyzePattern(pattern)
	c.info.Store(pattern, v)
	return v
}

func analyzePattern(pattern string) *PatternInfo {
	info := &PatternInfo{}

	for i, m := range seasonEpisodeSubPatternRegex.FindAllStringSubmatch(pattern, -1) {
		sep := m[1]
		class := "e"
		if last := sep[len(sep)-1]; last == 'x' || last == 'X' {
			class = "x"
		}
		info.EpisodeFormats = append(info.EpisodeFormats, EpisodeFormat{
			SeasonEpisodePattern: m[0],
			EpisodePattern:       sep + m[2],
			EpisodeToken:         m[2],
			Separator:            sep,
			SeparatorClass:       class,
			Index:                i + 1,
		})
	}

	for _, t := range FindTokens(pattern) {
		switch tokenKey(t.Token) {
		case "release date", "air date":
			info.HasEpisodeIdentifier = true
		case "episode title", "episode cleantitle":
			info.RequiresEpisodeTitle = true
		}
	}
	if len(info.EpisodeFormats) > 0 {
		info.HasEpisodeIdentifier = true
	}

	return info
}
