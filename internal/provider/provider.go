// Package provider declares the external collaborators the naming engine
// consumes. Implementations live in subpackages or in the surrounding system;
// the engine only sees these interfaces.
package provider

import (
	"context"

	"github.com/Digital-Shane/scene-tidy/internal/media"
)

// QualityLookup maps a quality tier to its display title.
type QualityLookup interface {
	Title(qualityID int) (string, bool)
}

// MediaInfoUpdater refreshes a file's in-memory media info on demand. Update
// is a cache fill: it mutates file.MediaInfo in place and is invoked at most
// once per render, only when a token demands facts newer than the cached
// schema revision. Failures must not abort rendering.
type MediaInfoUpdater interface {
	Update(ctx context.Context, file *media.EpisodeFile, series *media.Series) error
}

// CustomFormatScorer derives the ordered custom-format list for a file when
// the caller has not pre-supplied one. The returned order is owned by the
// scorer and is never re-sorted by the engine.
type CustomFormatScorer interface {
	Score(file *media.EpisodeFile, series *media.Series) []media.CustomFormat
}

// QualityLookupFunc adapts a plain function to QualityLookup.
type QualityLookupFunc func(qualityID int) (string, bool)

func (f QualityLookupFunc) Title(qualityID int) (string, bool) { return f(qualityID) }
