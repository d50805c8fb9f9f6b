package cmd

import (
	"fmt"
	"os"

	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or initialize the naming configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println(headingStyle.Render("Config file"))
		path := config.Path()
		if _, err := os.Stat(path); err != nil {
			path += dimStyle.Render(" (not present, using defaults)")
		}
		fmt.Println("  " + path)

		fmt.Println(headingStyle.Render("Settings"))
		fmt.Printf("  rename                     = %t\n", cfg.RenameEpisodes)
		fmt.Printf("  replace_illegal_characters = %t\n", cfg.ReplaceIllegalCharacters)
		fmt.Printf("  colon_replacement          = %s\n", cfg.ColonReplacement)
		fmt.Printf("  standard_episode_format    = %s\n", cfg.StandardEpisodeFormat)
		fmt.Printf("  series_folder_format       = %s\n", cfg.SeriesFolderFormat)
		fmt.Printf("  multi_episode_style        = %s\n", cfg.MultiEpisodeStyle)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}
		if err := config.Default().Save(); err != nil {
			return err
		}
		fmt.Println(resultStyle.Render("wrote " + path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
