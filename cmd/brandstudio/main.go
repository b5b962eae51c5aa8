package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brandstudio",
	Short: "AI-assisted marketing content console",
	Long: `BrandStudio turns a brand name and goals into a working content kit:
a strategy document, a structured campaign brief, and image, video, and
social content derived from it.

Run "brandstudio serve" for the browser console, or use the subcommands
directly for one-shot generation.

Examples:
  brandstudio serve
  brandstudio strategy --brand "Aurora Coffee" --goals "launch cold brew"
  brandstudio image --prompt "product shot on walnut table" --out shot.png
  brandstudio video --prompt "steam rising over a slow pour"
  brandstudio social --platform instagram`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
