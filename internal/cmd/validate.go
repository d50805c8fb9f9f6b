package cmd

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/Digital-Shane/scene-tidy/internal/naming"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [template]",
	Short: "Check a naming template for problems",
	Long: `Check a naming template without rendering it.

Reports unrecognized tokens, whether the template carries any
episode-identifying information, and whether it depends on episode titles.
Without a template argument the configured standard episode format is
checked. Unknown tokens are reported as warnings since they render empty;
only an empty template exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	} else {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		pattern = cfg.StandardEpisodeFormat
	}

	if strings.TrimSpace(pattern) == "" {
		return naming.ErrNamingFormatEmpty
	}

	var unknown []string
	for _, t := range naming.FindTokens(pattern) {
		if !naming.KnownToken(t.Token) {
			unknown = append(unknown, "{"+t.Token+"}")
		}
	}

	info := naming.NewBuilder().PatternInfo(pattern)

	fmt.Println(headingStyle.Render("Template"))
	fmt.Println("  " + pattern)

	// Unknown tokens render empty rather than failing, so they are warnings:
	// a template written for a newer engine version keeps working.
	if len(unknown) > 0 {
		fmt.Println(warnStyle.Render("Unknown tokens (will render empty)"))
		for _, name := range unknown {
			fmt.Println("  " + name)
		}
	}
	if !info.HasEpisodeIdentifier {
		fmt.Println(warnStyle.Render("  template has no season/episode numbering or release date"))
	}
	if info.RequiresEpisodeTitle {
		fmt.Println(dimStyle.Render("  renames will wait for episode titles to be available"))
	}
	fmt.Println(resultStyle.Render("OK"))
	return nil
}
