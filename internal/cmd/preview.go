package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/Digital-Shane/scene-tidy/internal/media"
	"github.com/Digital-Shane/scene-tidy/internal/naming"
	"github.com/Digital-Shane/scene-tidy/internal/provider/ffprobe"
	"github.com/spf13/cobra"
)

var previewFlags struct {
	series    string
	year      int
	network   string
	date      string
	titles    []string
	season    int
	episodes  []int
	quality   string
	proper    bool
	real      bool
	group     string
	sceneName string
	ext       string
	probePath string
}

var previewCmd = &cobra.Command{
	Use:   "preview [template]",
	Short: "Render a naming template against sample or supplied metadata",
	Long: `Render a naming template and print the resulting file name.

Without a template argument the configured standard episode format is used.
Metadata defaults to a built-in sample; override individual fields with
flags, or point --probe at a real media file to fill the MediaInfo tokens
from its streams.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.StringVar(&previewFlags.series, "series", "", "series title")
	f.IntVar(&previewFlags.year, "year", 0, "series year")
	f.StringVar(&previewFlags.network, "network", "", "series network")
	f.StringVar(&previewFlags.date, "date", "", "episode release date (2006-01-02)")
	f.StringArrayVar(&previewFlags.titles, "title", nil, "episode title (repeat for multi-episode files)")
	f.IntVar(&previewFlags.season, "season", 0, "season number")
	f.IntSliceVar(&previewFlags.episodes, "episode", nil, "episode number (repeat for multi-episode files)")
	f.StringVar(&previewFlags.quality, "quality", "", "quality title")
	f.BoolVar(&previewFlags.proper, "proper", false, "mark the file as a proper")
	f.BoolVar(&previewFlags.real, "real", false, "mark the file as a REAL re-release")
	f.StringVar(&previewFlags.group, "group", "", "release group")
	f.StringVar(&previewFlags.sceneName, "scene-name", "", "original scene release name")
	f.StringVar(&previewFlags.ext, "ext", "mkv", "file extension")
	f.StringVar(&previewFlags.probePath, "probe", "", "media file to probe for MediaInfo tokens")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.RenameEpisodes = true
	if len(args) == 1 {
		cfg.StandardEpisodeFormat = args[0]
	}

	series, episodes, file := previewSnapshot()

	var opts []naming.Option
	if previewFlags.probePath != "" {
		abs, err := filepath.Abs(previewFlags.probePath)
		if err != nil {
			return fmt.Errorf("resolve probe path: %w", err)
		}
		file.Path = abs
		file.MediaInfo = nil
		series.Path = filepath.Dir(abs)
		opts = append(opts, naming.WithMediaInfoUpdater(ffprobe.New()))
	}

	builder := naming.NewBuilder(opts...)
	name, err := builder.FileName(cmd.Context(), episodes, series, file, previewFlags.ext, cfg, nil)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("Template"))
	fmt.Println("  " + cfg.StandardEpisodeFormat)
	fmt.Println(headingStyle.Render("Result"))
	fmt.Println("  " + resultStyle.Render(name))
	folder := builder.SeriesFolder(series, cfg)
	fmt.Println(headingStyle.Render("Path"))
	fmt.Println("  " + dimStyle.Render(filepath.Join(folder, name)))
	if builder.RequiresEpisodeTitle(cfg.StandardEpisodeFormat) && len(previewFlags.titles) == 0 && episodes[0].Title == "" {
		fmt.Println(warnStyle.Render("  template requires episode titles and none were supplied"))
	}
	return nil
}

// previewSnapshot builds the metadata snapshot for one preview run: the
// canned sample, overridden field by field from flags.
func previewSnapshot() (*media.Series, []media.Episode, *media.EpisodeFile) {
	series := sampleSeries()
	if previewFlags.series != "" {
		series.Title = previewFlags.series
	}
	if previewFlags.year > 0 {
		series.Year = previewFlags.year
	}
	if previewFlags.network != "" {
		series.Network = previewFlags.network
	}

	episodes := sampleEpisodes()
	if len(previewFlags.episodes) > 0 || len(previewFlags.titles) > 0 {
		n := len(previewFlags.episodes)
		if len(previewFlags.titles) > n {
			n = len(previewFlags.titles)
		}
		base := episodes[0]
		episodes = make([]media.Episode, n)
		for i := range episodes {
			episodes[i] = base
			if i < len(previewFlags.episodes) {
				episodes[i].EpisodeNumber = previewFlags.episodes[i]
			} else {
				episodes[i].EpisodeNumber = base.EpisodeNumber + i
			}
			if i < len(previewFlags.titles) {
				episodes[i].Title = previewFlags.titles[i]
			}
		}
	}
	for i := range episodes {
		if previewFlags.season > 0 {
			episodes[i].SeasonNumber = previewFlags.season
		}
		if previewFlags.date != "" {
			episodes[i].AirDate = previewFlags.date
		}
	}

	file := sampleFile()
	if previewFlags.quality != "" {
		file.Quality.Title = previewFlags.quality
	}
	if previewFlags.proper {
		file.Quality.Revision.Version = 2
	}
	file.Quality.Revision.Real = previewFlags.real
	if previewFlags.group != "" {
		file.ReleaseGroup = previewFlags.group
	}
	if previewFlags.sceneName != "" {
		file.SceneName = previewFlags.sceneName
	}

	if ext := strings.TrimPrefix(previewFlags.ext, "."); ext != "" {
		previewFlags.ext = "." + ext
	}
	return series, episodes, file
}
