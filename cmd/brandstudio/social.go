package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	platformFlag string
	hookFlag     string
	trendsFlag   bool
)

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Draft a social post or research platform trends",
	Long: `Social drafts a post for a platform, optionally building on a hook. With
--trends it instead runs a web-grounded search for what is currently working
on that platform and cites its sources.

Examples:
  brandstudio social --platform instagram --hook "Your 3pm coffee is lying to you"
  brandstudio social --platform tiktok --trends`,
	Run: runSocial,
}

func init() {
	socialCmd.Flags().StringVarP(&platformFlag, "platform", "P", "", "Target platform (required)")
	socialCmd.Flags().StringVar(&hookFlag, "hook", "", "Hook to build the post on")
	socialCmd.Flags().BoolVar(&trendsFlag, "trends", false, "Research current platform trends instead of drafting")
	socialCmd.MarkFlagRequired("platform")
	rootCmd.AddCommand(socialCmd)
}

func runSocial(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	sess, _, _ := bootstrap(ctx)

	if trendsFlag {
		result, err := sess.Social.Trends(ctx, platformFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Trend search failed")
		}
		fmt.Println(result.Text)
		if len(result.Sources) > 0 {
			fmt.Println("\nSources:")
			for _, src := range result.Sources {
				fmt.Printf("  %s - %s\n", src.Title, src.URI)
			}
		}
		return
	}

	post, err := sess.Social.Draft(ctx, platformFlag, hookFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Post drafting failed")
	}
	fmt.Println(post)
}
