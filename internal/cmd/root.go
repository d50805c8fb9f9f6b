package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scene-tidy",
	Short: "Render library file and folder names from naming templates",
	Long: `scene-tidy renders file and folder names for a scene-based media library
from user-authored naming templates.

Templates mix literal text with {Token} placeholders. Resolved names are
sanitized for cross-platform filesystems and kept under path length limits.
Use "scene-tidy tokens" to list the supported placeholders and
"scene-tidy preview" to try a template against sample metadata.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)
