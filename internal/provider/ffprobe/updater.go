// Package ffprobe implements the media-info updater collaborator on top of
// an ffprobe binary.
package ffprobe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Digital-Shane/scene-tidy/internal/media"
	"github.com/patrickmn/go-cache"
	"gopkg.in/vansante/go-ffprobe.v2"
)

// probeFunc defines the function signature used to execute ffprobe.
type probeFunc func(ctx context.Context, path string, extraOpts ...string) (*ffprobe.ProbeData, error)

// Updater probes files on demand and fills their media.Info snapshot.
// Probe results are cached per path with a short TTL so repeated renders of
// the same file do not shell out again.
type Updater struct {
	probe probeFunc
	cache *cache.Cache
}

// New creates an Updater with default configuration.
func New() *Updater {
	return &Updater{
		probe: ffprobe.ProbeURL,
		cache: cache.New(10*time.Minute, 30*time.Minute),
	}
}

// Update implements provider.MediaInfoUpdater.
func (u *Updater) Update(ctx context.Context, file *media.EpisodeFile, series *media.Series) error {
	if file == nil || file.Path == "" {
		return fmt.Errorf("ffprobe: file has no on-disk path")
	}

	if cached, ok := u.cache.Get(file.Path); ok {
		info := cached.(media.Info)
		file.MediaInfo = &info
		return nil
	}

	data, err := u.probe(ctx, file.Path)
	if err != nil {
		return fmt.Errorf("ffprobe failed for %s: %w", file.Path, err)
	}

	info := buildInfo(data)
	u.cache.Set(file.Path, info, cache.DefaultExpiration)
	file.MediaInfo = &info
	return nil
}

func buildInfo(data *ffprobe.ProbeData) media.Info {
	info := media.Info{SchemaRevision: media.CurrentInfoSchemaRevision}
	if data == nil {
		return info
	}

	if v := data.FirstVideoStream(); v != nil {
		info.VideoCodec = normalizeVideoCodec(v.CodecName)
		info.VideoBitDepth = bitDepth(v)
		info.VideoDynamicRange, info.VideoDynamicRangeType = dynamicRange(v)
	}

	if a := data.FirstAudioStream(); a != nil {
		info.AudioCodec = normalizeAudioCodec(a.CodecName)
		info.AudioChannels = channelLayout(a.Channels)
	}

	for _, s := range data.StreamType(ffprobe.StreamAudio) {
		if lang := s.Tags.Language; lang != "" {
			info.AudioLanguages = append(info.AudioLanguages, lang)
		}
	}
	for _, s := range data.StreamType(ffprobe.StreamSubtitle) {
		if lang := s.Tags.Language; lang != "" {
			info.SubtitleLanguages = append(info.SubtitleLanguages, lang)
		}
	}

	return info
}

func normalizeVideoCodec(codec string) string {
	switch strings.ToLower(codec) {
	case "h264", "avc":
		return "x264"
	case "hevc", "h265":
		return "x265"
	case "av1":
		return "AV1"
	case "mpeg2video":
		return "MPEG2"
	case "":
		return ""
	default:
		return codec
	}
}

func normalizeAudioCodec(codec string) string {
	switch strings.ToLower(codec) {
	case "aac":
		return "AAC"
	case "ac3":
		return "AC3"
	case "eac3":
		return "EAC3"
	case "dts":
		return "DTS"
	case "truehd":
		return "TrueHD"
	case "flac":
		return "FLAC"
	case "opus":
		return "Opus"
	case "mp3":
		return "MP3"
	case "":
		return ""
	default:
		return strings.ToUpper(codec)
	}
}

func bitDepth(stream *ffprobe.Stream) int {
	if n, err := strconv.Atoi(stream.BitsPerRawSample); err == nil && n > 0 {
		return n
	}
	if strings.Contains(stream.PixFmt, "10le") || strings.Contains(stream.PixFmt, "10be") {
		return 10
	}
	if stream.PixFmt != "" {
		return 8
	}
	return 0
}

func dynamicRange(stream *ffprobe.Stream) (string, string) {
	switch stream.ColorTransfer {
	case "smpte2084":
		return "HDR", "HDR10"
	case "arib-std-b67":
		return "HDR", "HLG"
	default:
		return "", ""
	}
}

// channelLayout converts a channel count to the conventional x.y notation
// value (6 channels reads as 5.1).
func channelLayout(channels int) float64 {
	if channels <= 0 {
		return 0
	}
	if channels <= 2 {
		return float64(channels)
	}
	return float64(channels-1) + 0.1
}
