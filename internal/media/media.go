// Package media defines the immutable domain snapshots the naming engine
// consumes. Snapshots are assembled by external collaborators (catalog store,
// download importer) and are only ever read here.
package media

import (
	"path/filepath"
	"sort"
	"strings"
)

// Gender tags a performer on an episode.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// Performer is a credited performer on an episode.
type Performer struct {
	Name   string
	Gender Gender
}

// Series is a point-in-time snapshot of a tracked site/series.
type Series struct {
	ID      int
	TpdbID  int
	Title   string
	Year    int
	Network string
	// Path is the series' root folder on disk. Empty when the series has not
	// been mapped to storage yet.
	Path string
}

// Episode is a point-in-time snapshot of a single episode.
type Episode struct {
	ID            int
	Title         string
	AirDate       string // ISO date (2006-01-02), empty when unknown
	SeasonNumber  int
	EpisodeNumber int
	Performers    []Performer
}

// Revision carries the re-release state of a quality.
type Revision struct {
	Version int
	Real    bool
}

// Quality is a quality tier plus its revision state.
type Quality struct {
	ID       int
	Title    string
	Revision Revision
}

// Info holds technical media facts extracted from a file. The zero value
// means "never probed". SchemaRevision records which extractor version
// produced the facts; newer tokens may demand a newer revision.
type Info struct {
	SchemaRevision        int
	VideoCodec            string
	VideoBitDepth         int
	VideoDynamicRange     string
	VideoDynamicRangeType string
	AudioCodec            string
	AudioChannels         float64
	AudioLanguages        []string
	SubtitleLanguages     []string
}

// CurrentInfoSchemaRevision is the revision written by the current extractor.
const CurrentInfoSchemaRevision = 5

// CustomFormat is a matched custom-format descriptor supplied by the scoring
// collaborator. Order is owned by the scorer and must not be re-sorted.
type CustomFormat struct {
	Name                string
	IncludeWhenRenaming bool
}

// EpisodeFile is a point-in-time snapshot of an imported file.
type EpisodeFile struct {
	ID           int
	SceneName    string
	RelativePath string
	// Path is the absolute on-disk location, used only for on-demand
	// media-info refresh. Empty when the file has not been placed yet.
	Path          string
	Quality       Quality
	MediaInfo     *Info
	ReleaseGroup  string
	CustomFormats []CustomFormat
}

// OriginalTitle returns the best-known release title for the file: the scene
// name when present, otherwise the stored file name without its extension.
func (f *EpisodeFile) OriginalTitle() string {
	if f.SceneName != "" {
		return f.SceneName
	}
	base := filepath.Base(f.RelativePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SortEpisodes orders episodes by season number, then air date, then episode
// number. The engine requires this order before numbering and title joining.
func SortEpisodes(episodes []Episode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		if episodes[i].SeasonNumber != episodes[j].SeasonNumber {
			return episodes[i].SeasonNumber < episodes[j].SeasonNumber
		}
		if episodes[i].AirDate != episodes[j].AirDate {
			return episodes[i].AirDate < episodes[j].AirDate
		}
		return episodes[i].EpisodeNumber < episodes[j].EpisodeNumber
	})
}
