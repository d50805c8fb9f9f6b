// Package naming renders user-authored templates into sanitized, length-safe
// file and folder names from domain snapshots.
package naming

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/Digital-Shane/scene-tidy/internal/media"
	"github.com/Digital-Shane/scene-tidy/internal/provider"
)

// Byte ceilings for a single path segment and an assembled path. Segments are
// measured in bytes, not runes, to match filesystem limits.
const (
	defaultMaxSegmentLength = 255
	defaultMaxPathLength    = 4096
)

var (
	// ErrNamingFormatEmpty reports an empty standard episode format while
	// renaming is enabled. This is the only configuration state the engine
	// refuses to render.
	ErrNamingFormatEmpty = errors.New("standard episode format must not be empty when renaming is enabled")

	// ErrNoEpisodes reports a FileName call without any episode snapshot.
	ErrNoEpisodes = errors.New("at least one episode is required to build a file name")
)

// Builder renders file names, file paths, and series folder names. A Builder
// is safe for concurrent use; per-render state never leaks between calls.
type Builder struct {
	cache     *PatternCache
	quality   provider.QualityLookup
	mediaInfo provider.MediaInfoUpdater
	scorer    provider.CustomFormatScorer

	maxSegmentLength int
	maxPathLength    int
}

// Option configures a Builder.
type Option func(*Builder)

// WithQualityLookup supplies the quality-title collaborator. Without one,
// quality tokens fall back to the title embedded in the file snapshot.
func WithQualityLookup(l provider.QualityLookup) Option {
	return func(b *Builder) { b.quality = l }
}

// WithMediaInfoUpdater supplies the on-demand media-info refresh collaborator.
func WithMediaInfoUpdater(u provider.MediaInfoUpdater) Option {
	return func(b *Builder) { b.mediaInfo = u }
}

// WithCustomFormatScorer supplies the custom-format collaborator used when a
// caller does not pass an explicit format list.
func WithCustomFormatScorer(s provider.CustomFormatScorer) Option {
	return func(b *Builder) { b.scorer = s }
}

// WithMaxSegmentLength overrides the per-segment byte ceiling.
func WithMaxSegmentLength(n int) Option {
	return func(b *Builder) { b.maxSegmentLength = n }
}

// WithMaxPathLength overrides the full-path byte ceiling.
func WithMaxPathLength(n int) Option {
	return func(b *Builder) { b.maxPathLength = n }
}

// NewBuilder creates a Builder with its own pattern cache.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		cache:            NewPatternCache(),
		maxSegmentLength: defaultMaxSegmentLength,
		maxPathLength:    defaultMaxPathLength,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FileName renders the file name (extension included) for a file covering one
// or more episodes of a series. When renaming is disabled it returns the
// file's original title unchanged. formats overrides the custom-format list;
// pass nil to use the file's stored formats or the scorer.
func (b *Builder) FileName(ctx context.Context, episodes []media.Episode, series *media.Series, file *media.EpisodeFile, extension string, cfg *config.NamingConfig, formats []media.CustomFormat) (string, error) {
	return b.fileName(ctx, episodes, series, file, extension, cfg, formats, b.maxPathLength)
}

// FilePath renders the file's full path under the series root folder. The
// path ceiling is charged for the root before any segment is rendered.
func (b *Builder) FilePath(ctx context.Context, episodes []media.Episode, series *media.Series, file *media.EpisodeFile, extension string, cfg *config.NamingConfig, formats []media.CustomFormat) (string, error) {
	budget := b.maxPathLength - len(series.Path) - 1
	name, err := b.fileName(ctx, episodes, series, file, extension, cfg, formats, budget)
	if err != nil {
		return "", err
	}
	return filepath.Join(series.Path, name), nil
}

func (b *Builder) fileName(ctx context.Context, episodes []media.Episode, series *media.Series, file *media.EpisodeFile, extension string, cfg *config.NamingConfig, formats []media.CustomFormat, pathBudget int) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	extension = normalizeExtension(extension)

	if !cfg.RenameEpisodes {
		return file.OriginalTitle() + extension, nil
	}
	if strings.TrimSpace(cfg.StandardEpisodeFormat) == "" {
		return "", ErrNamingFormatEmpty
	}
	if len(episodes) == 0 {
		return "", ErrNoEpisodes
	}

	sorted := append([]media.Episode(nil), episodes...)
	media.SortEpisodes(sorted)

	if formats == nil {
		if file.CustomFormats != nil {
			formats = file.CustomFormats
		} else if b.scorer != nil {
			formats = b.scorer.Score(file, series)
		}
	}

	state := &renderState{
		ctx:      ctx,
		cfg:      cfg,
		series:   series,
		episodes: sorted,
		file:     file,
		formats:  formats,
		quality:  b.quality,
		updater:  b.mediaInfo,
	}
	return b.buildPath(state, cfg.StandardEpisodeFormat, extension, pathBudget), nil
}

// SeriesFolder renders the folder name for a series from the configured
// folder format. An empty format falls back to the stock one.
func (b *Builder) SeriesFolder(series *media.Series, cfg *config.NamingConfig) string {
	if cfg == nil {
		cfg = config.Default()
	}
	pattern := cfg.SeriesFolderFormat
	if strings.TrimSpace(pattern) == "" {
		pattern = config.Default().SeriesFolderFormat
	}

	state := &renderState{
		ctx:     context.Background(),
		cfg:     cfg,
		series:  series,
		quality: b.quality,
	}
	return b.buildPath(state, pattern, "", b.maxPathLength)
}

// RequiresEpisodeTitle reports whether rendering the pattern needs episode
// titles to be present. Callers use it to defer renames until metadata
// arrives.
func (b *Builder) RequiresEpisodeTitle(pattern string) bool {
	return b.cache.Info(pattern).RequiresEpisodeTitle
}

// PatternInfo exposes the cached analysis of a pattern.
func (b *Builder) PatternInfo(pattern string) *PatternInfo {
	return b.cache.Info(pattern)
}

func isPathSeparator(r rune) bool { return r == '/' || r == '\\' }

// buildPath renders each template segment under the per-segment and
// whole-path ceilings and joins them with the platform separator. Segments
// rendering empty are dropped; the extension is charged to and appended on
// the last segment.
func (b *Builder) buildPath(state *renderState, pattern, extension string, pathBudget int) string {
	segments := strings.FieldsFunc(pattern, isPathSeparator)

	var parts []string
	remaining := pathBudget
	for i, segment := range segments {
		last := i == len(segments)-1

		limit := b.maxSegmentLength
		if remaining < limit {
			limit = remaining
		}
		if last {
			limit -= len(extension)
		}

		rendered := b.buildSegment(state, segment, limit)
		if rendered == "" {
			continue
		}
		if last {
			rendered += extension
		}
		parts = append(parts, rendered)
		remaining -= len(rendered) + 1
	}
	return filepath.Join(parts...)
}

// buildSegment renders one path segment with the two-pass scheme: a measure
// pass with episode titles stubbed empty fixes the byte budget left for
// titles, then the real pass defers titles, and a final pass drops the
// composed titles in and collapses brace escapes.
func (b *Builder) buildSegment(state *renderState, segment string, budget int) string {
	info := b.cache.Info(segment)
	segment, numbering := prepareNumbering(state, segment, info)

	remaining := budget
	if info.RequiresEpisodeTitle && len(state.episodes) > 0 {
		state.titleDecorationLen = 0
		measureTitles := func(m TokenMatch, clean bool) resolution {
			state.titleDecorationLen += len(m.Prefix) + len(m.Suffix)
			return resolved("")
		}
		measured := replaceTokens(segment, buildRegistry(state, numbering, measureTitles).resolve, state.cfg, false)
		measured = CleanFileName(measured, state.cfg)
		remaining = budget - len(measured) - state.titleDecorationLen
	}

	out := replaceTokens(segment, buildRegistry(state, numbering, nil).resolve, state.cfg, true)

	title := composeTitles(episodeTitles(state.episodes, false, state.cfg), titleJoinSeparator, remaining)
	cleanTitle := composeTitles(episodeTitles(state.episodes, true, state.cfg), cleanTitleJoinSeparator, remaining)
	out = replaceTokens(out, func(m TokenMatch) resolution {
		switch tokenKey(m.Token) {
		case "episode title":
			return resolved(title)
		case "episode cleantitle":
			return resolved(cleanTitle)
		}
		return resolved("")
	}, state.cfg, false)

	out = CleanFileName(out, state.cfg)
	out = strings.ReplaceAll(out, ellipsisMarker, ellipsis)
	// The title budget only bounds title content; a segment can still run
	// over on non-title tokens alone, so enforce the ceiling on the whole.
	if len(out) > budget {
		out = strings.TrimRight(truncateBytes(out, budget), " .-")
	}
	return out
}

// prepareNumbering rewrites each season/episode sub-pattern occurrence into a
// synthesized placeholder token and returns resolvers that render the full
// multi-episode numbering for it.
func prepareNumbering(state *renderState, segment string, info *PatternInfo) (string, map[string]resolverFunc) {
	if len(info.EpisodeFormats) == 0 || len(state.episodes) == 0 {
		return segment, nil
	}

	extra := make(map[string]resolverFunc, len(info.EpisodeFormats))
	for _, f := range info.EpisodeFormats {
		f := f
		segment = strings.Replace(segment, f.SeasonEpisodePattern, "{"+f.PlaceholderToken()+"}", 1)
		extra[tokenKey(f.PlaceholderToken())] = func(TokenMatch) resolution {
			return resolved(renderEpisodeFormat(state, f))
		}
	}
	return segment, extra
}

// renderEpisodeFormat renders one numbering occurrence across every episode
// in the render. Additional episodes extend the first: "01E01-E02" for
// e-class separators, "1x01-02" for x-class.
func renderEpisodeFormat(state *renderState, f EpisodeFormat) string {
	var sb strings.Builder
	sb.WriteString(renderNumberingPattern(f.SeasonEpisodePattern, state.episodes[0], state.cfg))
	for _, ep := range state.episodes[1:] {
		sb.WriteString("-")
		if f.SeparatorClass == "x" {
			sb.WriteString(renderNumberingPattern(f.EpisodeToken, ep, state.cfg))
		} else {
			sb.WriteString(renderNumberingPattern(f.EpisodePattern, ep, state.cfg))
		}
	}
	return sb.String()
}

func renderNumberingPattern(pattern string, ep media.Episode, cfg *config.NamingConfig) string {
	return replaceTokens(pattern, func(m TokenMatch) resolution {
		switch tokenKey(m.Token) {
		case "season":
			return resolved(padNumber(ep.SeasonNumber, m.CustomFormat))
		case "episode":
			return resolved(padNumber(ep.EpisodeNumber, m.CustomFormat))
		}
		return resolved("")
	}, cfg, true)
}

func normalizeExtension(extension string) string {
	if extension == "" || strings.HasPrefix(extension, ".") {
		return extension
	}
	return "." + extension
}
