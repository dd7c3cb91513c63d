package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "career-compass",
	Short: "Generate 8-week learning plans and download them as PDFs",
	Long: `career-compass turns a career goal, skill level, skills to learn, and a
weekly time budget into a structured 8-week learning plan.

Plan generation is delegated to the Claude API; the server validates the
returned JSON and can render any plan as a downloadable PDF.`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.career-compass/config.json)")
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
