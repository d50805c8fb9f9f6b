package naming

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/Digital-Shane/scene-tidy/internal/media"
	"github.com/Digital-Shane/scene-tidy/internal/provider"
)

// resolution is the outcome of resolving one token. A deferred resolution
// leaves the literal token text in the output for a later pass; an empty
// resolved value strips the token together with its decoration.
type resolution struct {
	value    string
	deferred bool
}

func resolved(value string) resolution { return resolution{value: value} }

var deferResolution = resolution{deferred: true}

type resolverFunc func(TokenMatch) resolution

// tokenRegistry maps canonical token names to resolvers closed over one
// render's domain snapshot. Lookup is case- and separator-insensitive;
// unknown tokens resolve to empty so templates written for newer engine
// versions degrade instead of failing.
type tokenRegistry struct {
	resolvers map[string]resolverFunc
}

func newTokenRegistry() *tokenRegistry {
	return &tokenRegistry{resolvers: make(map[string]resolverFunc)}
}

func (r *tokenRegistry) add(name string, fn resolverFunc) {
	r.resolvers[tokenKey(name)] = fn
}

func (r *tokenRegistry) addStatic(name, value string) {
	r.add(name, func(TokenMatch) resolution { return resolved(value) })
}

func (r *tokenRegistry) resolve(m TokenMatch) resolution {
	fn, ok := r.resolvers[tokenKey(m.Token)]
	if !ok {
		return resolved("")
	}
	return fn(m)
}

// renderState carries one render's snapshot and per-render bookkeeping: the
// single-shot media-info refresh and the decoration bytes measured around
// deferred episode-title tokens.
type renderState struct {
	ctx      context.Context
	cfg      *config.NamingConfig
	series   *media.Series
	episodes []media.Episode
	file     *media.EpisodeFile
	formats  []media.CustomFormat

	quality   provider.QualityLookup
	updater   provider.MediaInfoUpdater
	refreshed bool

	titleDecorationLen int
}

// ensureMediaInfo returns the file's media info, refreshing it through the
// external updater at most once per render when the cached facts are older
// than minRevision. Refresh failure degrades to whatever is cached.
func (s *renderState) ensureMediaInfo(minRevision int) *media.Info {
	if s.file == nil {
		return nil
	}
	info := s.file.MediaInfo
	if info != nil && info.SchemaRevision >= minRevision {
		return info
	}
	if s.refreshed || s.updater == nil || s.series == nil || s.series.Path == "" {
		return info
	}
	s.refreshed = true
	if err := s.updater.Update(s.ctx, s.file, s.series); err != nil {
		return info
	}
	return s.file.MediaInfo
}

// Media-info schema revisions required per token family.
const (
	infoRevisionLanguages    = 3
	infoRevisionDynamicRange = 5
)

// defaultReleaseGroup labels files whose release group is unknown.
const defaultReleaseGroup = "scene-tidy"

// buildRegistry composes the token groups for one render. titleResolver
// controls the episode-title tokens: nil defers them to the second pass.
func buildRegistry(s *renderState, extra map[string]resolverFunc, titleResolver func(m TokenMatch, clean bool) resolution) *tokenRegistry {
	r := newTokenRegistry()

	if s.series != nil {
		addSeriesTokens(r, s.series)
		addIDTokens(r, s.series)
	}
	if len(s.episodes) > 0 {
		addEpisodeTokens(r, s.episodes)
		addNumberingTokens(r, s)
	}
	if s.file != nil {
		addQualityTokens(r, s)
		addMediaInfoTokens(r, s)
		addFileTokens(r, s.file)
	}
	addCustomFormatTokens(r, s.formats)
	addEpisodeTitleTokens(r, s, titleResolver)

	for name, fn := range extra {
		r.resolvers[name] = fn
	}
	return r
}

func addSeriesTokens(r *tokenRegistry, series *media.Series) {
	title := series.Title

	r.addStatic("Site Title", title)
	r.addStatic("Site CleanTitle", CleanTitle(title))
	r.addStatic("Site TitleThe", TitleThe(title))
	r.addStatic("Site TitleYear", TitleYear(title, series.Year))
	r.addStatic("Site TitleWithoutYear", TitleWithoutYear(title))
	r.addStatic("Site TitleFirstCharacter", TitleFirstCharacter(title))
	r.addStatic("Site TitleSlug", SlugTitle(title))
	r.addStatic("Site Network", series.Network)
	if series.Year > 0 {
		r.addStatic("Site Year", strconv.Itoa(series.Year))
	} else {
		r.addStatic("Site Year", "")
	}

	// Series aliases for templates written against the generic token names.
	r.addStatic("Series Title", title)
	r.addStatic("Series CleanTitle", CleanTitle(title))
	r.addStatic("Series TitleThe", TitleThe(title))
	r.addStatic("Series TitleYear", TitleYear(title, series.Year))
}

func addIDTokens(r *tokenRegistry, series *media.Series) {
	if series.TpdbID > 0 {
		r.addStatic("TpdbId", strconv.Itoa(series.TpdbID))
	} else {
		r.addStatic("TpdbId", "")
	}
}

func addEpisodeTokens(r *tokenRegistry, episodes []media.Episode) {
	airDate := episodes[0].AirDate
	if airDate == "" {
		airDate = "Unknown"
	}
	r.addStatic("Release Date", airDate)
	r.addStatic("Air Date", airDate)

	r.addStatic("Episode Performers", joinPerformers(episodes, ""))
	r.addStatic("Episode PerformersFemale", joinPerformers(episodes, media.GenderFemale))
	r.addStatic("Episode PerformersMale", joinPerformers(episodes, media.GenderMale))
}

func joinPerformers(episodes []media.Episode, gender media.Gender) string {
	var names []string
	seen := make(map[string]bool)
	for _, ep := range episodes {
		for _, p := range ep.Performers {
			if gender != "" && p.Gender != gender {
				continue
			}
			key := strings.ToLower(p.Name)
			if p.Name == "" || seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, p.Name)
		}
	}
	return strings.Join(names, " ")
}

// addNumberingTokens registers bare {season}/{episode} tokens resolved
// against the first episode; the combined sub-pattern placeholders are
// registered by the path assembler from the pattern cache's extraction.
func addNumberingTokens(r *tokenRegistry, s *renderState) {
	first := s.episodes[0]
	r.add("season", func(m TokenMatch) resolution {
		return resolved(padNumber(first.SeasonNumber, m.CustomFormat))
	})
	r.add("episode", func(m TokenMatch) resolution {
		return resolved(padNumber(first.EpisodeNumber, m.CustomFormat))
	})
}

// padNumber zero-pads n to the width of the "00"-style format argument.
func padNumber(n int, format string) string {
	width := len(format)
	if width <= 1 || strings.Trim(format, "0") != "" {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%0*d", width, n)
}

func addQualityTokens(r *tokenRegistry, s *renderState) {
	title := qualityTitle(s)
	r.addStatic("Quality Title", title)
	r.addStatic("Quality Full", qualityFull(title, s.file.Quality.Revision))
}

func qualityTitle(s *renderState) string {
	q := s.file.Quality
	if s.quality != nil {
		if title, ok := s.quality.Title(q.ID); ok {
			return title
		}
	}
	return q.Title
}

func qualityFull(title string, rev media.Revision) string {
	parts := []string{title}
	if rev.Version > 1 {
		parts = append(parts, "Proper")
	}
	if rev.Real {
		parts = append(parts, "REAL")
	}
	return strings.Join(parts, " ")
}

func addMediaInfoTokens(r *tokenRegistry, s *renderState) {
	mi := func(minRevision int, fn func(info *media.Info, m TokenMatch) string) resolverFunc {
		return func(m TokenMatch) resolution {
			info := s.ensureMediaInfo(minRevision)
			if info == nil {
				return resolved("")
			}
			return resolved(fn(info, m))
		}
	}

	r.add("MediaInfo VideoCodec", mi(0, func(info *media.Info, _ TokenMatch) string {
		return info.VideoCodec
	}))
	r.add("MediaInfo VideoBitDepth", mi(0, func(info *media.Info, _ TokenMatch) string {
		if info.VideoBitDepth <= 0 {
			return ""
		}
		return strconv.Itoa(info.VideoBitDepth)
	}))
	r.add("MediaInfo VideoDynamicRange", mi(infoRevisionDynamicRange, func(info *media.Info, _ TokenMatch) string {
		return info.VideoDynamicRange
	}))
	r.add("MediaInfo VideoDynamicRangeType", mi(infoRevisionDynamicRange, func(info *media.Info, _ TokenMatch) string {
		return info.VideoDynamicRangeType
	}))
	r.add("MediaInfo AudioCodec", mi(0, func(info *media.Info, _ TokenMatch) string {
		return info.AudioCodec
	}))
	r.add("MediaInfo AudioChannels", mi(0, func(info *media.Info, _ TokenMatch) string {
		return formatAudioChannels(info.AudioChannels)
	}))
	r.add("MediaInfo AudioLanguages", mi(infoRevisionLanguages, func(info *media.Info, m TokenMatch) string {
		return formatLanguages(info.AudioLanguages, m.CustomFormat, true)
	}))
	r.add("MediaInfo AudioLanguagesAll", mi(infoRevisionLanguages, func(info *media.Info, m TokenMatch) string {
		return formatLanguages(info.AudioLanguages, m.CustomFormat, false)
	}))
	r.add("MediaInfo SubtitleLanguages", mi(infoRevisionLanguages, func(info *media.Info, m TokenMatch) string {
		return formatLanguages(info.SubtitleLanguages, m.CustomFormat, false)
	}))
	r.add("MediaInfo Simple", mi(0, func(info *media.Info, _ TokenMatch) string {
		return strings.TrimSpace(info.VideoCodec + " " + info.AudioCodec)
	}))
	r.add("MediaInfo Full", mi(infoRevisionLanguages, func(info *media.Info, _ TokenMatch) string {
		out := strings.TrimSpace(info.VideoCodec + " " + info.AudioCodec)
		if langs := formatLanguages(info.AudioLanguages, "", false); langs != "" {
			out = strings.TrimSpace(out + " [" + langs + "]")
		}
		return out
	}))
}

func formatAudioChannels(channels float64) string {
	if channels <= 0 {
		return ""
	}
	return strconv.FormatFloat(channels, 'f', 1, 64)
}

func addCustomFormatTokens(r *tokenRegistry, formats []media.CustomFormat) {
	r.add("Custom Formats", func(m TokenMatch) resolution {
		return resolved(joinCustomFormats(formats, m.CustomFormat))
	})
	r.add("Custom Format", func(m TokenMatch) resolution {
		want := strings.TrimSpace(m.CustomFormat)
		if want == "" {
			return resolved("")
		}
		for _, f := range formats {
			if strings.EqualFold(f.Name, want) {
				return resolved(f.Name)
			}
		}
		return resolved("")
	})
}

// joinCustomFormats renders the include-when-renaming formats in scorer
// order, optionally filtered by the token argument: "-A-B" excludes, "A+B"
// keeps only the named formats.
func joinCustomFormats(formats []media.CustomFormat, arg string) string {
	arg = strings.TrimSpace(arg)
	exclude := strings.HasPrefix(arg, "-")

	selected := make(map[string]bool)
	if arg != "" {
		sep := "+"
		if exclude {
			arg = strings.TrimPrefix(arg, "-")
			sep = "-"
		}
		for _, name := range strings.Split(arg, sep) {
			if name = strings.TrimSpace(name); name != "" {
				selected[strings.ToLower(name)] = true
			}
		}
	}

	var names []string
	for _, f := range formats {
		if !f.IncludeWhenRenaming {
			continue
		}
		if len(selected) > 0 && selected[strings.ToLower(f.Name)] == exclude {
			continue
		}
		names = append(names, f.Name)
	}
	return strings.Join(names, " ")
}

func addFileTokens(r *tokenRegistry, file *media.EpisodeFile) {
	r.addStatic("Original Title", file.OriginalTitle())

	base := file.RelativePath
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	r.addStatic("Original Filename", base)

	group := file.ReleaseGroup
	if group == "" {
		group = defaultReleaseGroup
	}
	r.addStatic("Release Group", group)
}

func addEpisodeTitleTokens(r *tokenRegistry, s *renderState, titleResolver func(m TokenMatch, clean bool) resolution) {
	if titleResolver == nil {
		titleResolver = func(m TokenMatch, clean bool) resolution {
			return deferResolution
		}
	}
	r.add("Episode Title", func(m TokenMatch) resolution { return titleResolver(m, false) })
	r.add("Episode CleanTitle", func(m TokenMatch) resolution { return titleResolver(m, true) })
}

// episodeTitles returns the raw or cleaned title list for composition.
func episodeTitles(episodes []media.Episode, clean bool, cfg *config.NamingConfig) []string {
	titles := make([]string, 0, len(episodes))
	for _, ep := range episodes {
		title := ep.Title
		if clean {
			title = CleanTitle(title)
		} else {
			title = CleanTokenValue(title, cfg)
		}
		if title = strings.TrimSpace(title); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}
