package naming

import (
	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/Digital-Shane/scene-tidy/internal/media"
)

// DocumentedTokens lists the supported token names in display order, grouped
// the way users think about them.
var DocumentedTokens = []string{
	"Site Title",
	"Site CleanTitle",
	"Site TitleThe",
	"Site TitleYear",
	"Site TitleWithoutYear",
	"Site TitleFirstCharacter",
	"Site TitleSlug",
	"Site Year",
	"Site Network",
	"TpdbId",
	"Release Date",
	"Episode Title",
	"Episode CleanTitle",
	"Episode Performers",
	"Episode PerformersFemale",
	"Episode PerformersMale",
	"season",
	"episode",
	"Quality Title",
	"Quality Full",
	"MediaInfo VideoCodec",
	"MediaInfo VideoBitDepth",
	"MediaInfo VideoDynamicRange",
	"MediaInfo VideoDynamicRangeType",
	"MediaInfo AudioCodec",
	"MediaInfo AudioChannels",
	"MediaInfo AudioLanguages",
	"MediaInfo AudioLanguagesAll",
	"MediaInfo SubtitleLanguages",
	"MediaInfo Simple",
	"MediaInfo Full",
	"Custom Formats",
	"Original Title",
	"Original Filename",
	"Release Group",
}

// KnownToken reports whether the engine recognizes a token name, ignoring
// case and word-separator style.
func KnownToken(name string) bool {
	return knownTokens[tokenKey(name)]
}

var knownTokens = buildKnownTokens()

func buildKnownTokens() map[string]bool {
	s := &renderState{
		cfg:      config.Default(),
		series:   &media.Series{Title: "x"},
		episodes: []media.Episode{{}},
		file:     &media.EpisodeFile{},
	}
	r := buildRegistry(s, nil, nil)
	keys := make(map[string]bool, len(r.resolvers))
	for k := range r.resolvers {
		keys[k] = true
	}
	return keys
}
