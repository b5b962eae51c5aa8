package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jalvarado/brandstudio/internal/cli"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	brandFlag string
	goalsFlag string
	jsonFlag  bool
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Generate a strategy document and campaign brief",
	Long: `Strategy generates a marketing strategy document for a brand and extracts
a structured campaign brief from it. The brief is printed after the document
when extraction succeeds; a failed extraction still prints the document.

Examples:
  brandstudio strategy --brand "Aurora Coffee"
  brandstudio strategy --brand "Aurora Coffee" --goals "launch cold brew" --json`,
	Run: runStrategy,
}

func init() {
	strategyCmd.Flags().StringVarP(&brandFlag, "brand", "b", "", "Brand name (required)")
	strategyCmd.Flags().StringVarP(&goalsFlag, "goals", "g", "", "Campaign goals")
	strategyCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the full result as JSON")
	rootCmd.AddCommand(strategyCmd)
}

func runStrategy(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	sess, _, _ := bootstrap(ctx)

	brand := brandFlag
	if brand == "" {
		brand = cli.PromptForInput("Brand name", "")
	}
	if brand == "" {
		log.Fatal().Msg("Brand name is required")
	}

	result, err := sess.Strategy.Generate(ctx, brand, goalsFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Strategy generation failed")
	}

	if jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
		return
	}

	fmt.Println(result.StrategyText)

	if result.Campaign != nil {
		fmt.Println("\n--- Campaign brief ---")
		fmt.Printf("Visual style:    %s\n", result.Campaign.VisualStyle)
		fmt.Printf("Video concept:   %s\n", result.Campaign.VideoConcept)
		fmt.Printf("Target audience: %s\n", result.Campaign.TargetAudience)
		for i, hook := range result.Campaign.SocialHooks {
			fmt.Printf("Hook %d:          %s\n", i+1, hook)
		}
	} else {
		fmt.Println("\n(no campaign brief could be extracted)")
	}
}
