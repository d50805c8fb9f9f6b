package cmd

import (
	"github.com/Digital-Shane/scene-tidy/internal/media"
)

// Canned metadata used when the caller does not supply their own. The values
// cover every token family so previews and the token table always render
// something meaningful.
func sampleSeries() *media.Series {
	return &media.Series{
		ID:      1,
		TpdbID:  1702,
		Title:   "My Family Pies",
		Year:    2018,
		Network: "Nubiles",
	}
}

func sampleEpisodes() []media.Episode {
	return []media.Episode{
		{
			ID:            10,
			Title:         "Pilot",
			AirDate:       "2024-05-17",
			SeasonNumber:  1,
			EpisodeNumber: 3,
			Performers: []media.Performer{
				{Name: "Jane Doe", Gender: media.GenderFemale},
				{Name: "John Roe", Gender: media.GenderMale},
			},
		},
	}
}

func sampleFile() *media.EpisodeFile {
	return &media.EpisodeFile{
		ID:           100,
		SceneName:    "My.Family.Pies.S01E03.Pilot.720p.HDTV.x264-GRP",
		RelativePath: "Season 01/My.Family.Pies.S01E03.720p.mkv",
		Quality: media.Quality{
			ID:    4,
			Title: "HDTV-720p",
		},
		MediaInfo: &media.Info{
			SchemaRevision:    media.CurrentInfoSchemaRevision,
			VideoCodec:        "x264",
			VideoBitDepth:     8,
			AudioCodec:        "AAC",
			AudioChannels:     2.0,
			AudioLanguages:    []string{"eng"},
			SubtitleLanguages: []string{"eng", "spa"},
		},
		ReleaseGroup: "GRP",
		CustomFormats: []media.CustomFormat{
			{Name: "Remux", IncludeWhenRenaming: true},
		},
	}
}
