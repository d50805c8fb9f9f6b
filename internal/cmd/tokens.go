package cmd

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/scene-tidy/internal/config"
	"github.com/Digital-Shane/scene-tidy/internal/naming"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List supported template tokens with rendered examples",
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	builder := naming.NewBuilder()
	series, episodes, file := sampleSeries(), sampleEpisodes(), sampleFile()

	type row struct {
		token   string
		example string
	}
	rows := make([]row, 0, len(naming.DocumentedTokens))
	width := 0
	for _, name := range naming.DocumentedTokens {
		cfg.StandardEpisodeFormat = "{" + name + "}"
		example, err := builder.FileName(cmd.Context(), episodes, series, file, "", cfg, nil)
		if err != nil {
			return err
		}
		token := "{" + name + "}"
		if w := runewidth.StringWidth(token); w > width {
			width = w
		}
		rows = append(rows, row{token: token, example: example})
	}

	fmt.Println(headingStyle.Render("Token") + strings.Repeat(" ", width-5+2) + headingStyle.Render("Example"))
	for _, r := range rows {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(r.token)+2)
		example := r.example
		if example == "" {
			example = dimStyle.Render("(empty)")
		}
		fmt.Println(r.token + pad + example)
	}
	return nil
}
