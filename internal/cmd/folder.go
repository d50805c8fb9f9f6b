package cmd

import (
	"fmt"

	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/Digital-Shane/scene-tidy/internal/naming"
	"github.com/spf13/cobra"
)

var folderFlags struct {
	series  string
	year    int
	network string
}

var folderCmd = &cobra.Command{
	Use:   "folder [template]",
	Short: "Render the series folder name for a template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFolder,
}

func init() {
	f := folderCmd.Flags()
	f.StringVar(&folderFlags.series, "series", "", "series title")
	f.IntVar(&folderFlags.year, "year", 0, "series year")
	f.StringVar(&folderFlags.network, "network", "", "series network")

	rootCmd.AddCommand(folderCmd)
}

func runFolder(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.SeriesFolderFormat = args[0]
	}

	series := sampleSeries()
	if folderFlags.series != "" {
		series.Title = folderFlags.series
	}
	if folderFlags.year > 0 {
		series.Year = folderFlags.year
	}
	if folderFlags.network != "" {
		series.Network = folderFlags.network
	}

	folder := naming.NewBuilder().SeriesFolder(series, cfg)

	fmt.Println(headingStyle.Render("Template"))
	fmt.Println("  " + cfg.SeriesFolderFormat)
	fmt.Println(headingStyle.Render("Result"))
	fmt.Println("  " + resultStyle.Render(folder))
	return nil
}
