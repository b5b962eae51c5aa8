package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jalvarado/brandstudio/internal/cli"
	"github.com/jalvarado/brandstudio/internal/console"
	"github.com/jalvarado/brandstudio/internal/filehandler"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	videoPromptFlag string
	videoImageFlag  string
	videoAspectFlag string
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Generate a video, optionally animating a still image",
	Long: `Video submits an asynchronous generation job and waits for it to finish,
polling the provider at a fixed interval. With --image the video animates the
given still.

Examples:
  brandstudio video --prompt "steam rising over a slow pour"
  brandstudio video --image shot.png --prompt "gentle camera push-in" --aspect 9:16`,
	Run: runVideo,
}

func init() {
	videoCmd.Flags().StringVarP(&videoPromptFlag, "prompt", "p", "", "Generation prompt (required)")
	videoCmd.Flags().StringVarP(&videoImageFlag, "image", "i", "", "Still image file to animate")
	videoCmd.Flags().StringVar(&videoAspectFlag, "aspect", "", "Aspect ratio, e.g. 16:9, 9:16")
	videoCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(videoCmd)
}

func runVideo(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	sess, _, cfg := bootstrap(ctx)

	fmt.Printf("Submitting video job (polling every %s)...\n", cfg.PollInterval)
	start := time.Now()

	var (
		job *console.GenerationJob
		err error
	)
	if videoImageFlag != "" {
		payload, loadErr := filehandler.LoadFile(videoImageFlag)
		if loadErr != nil {
			log.Fatal().Err(loadErr).Msg("Failed to read input image")
		}
		job, err = sess.Video.Animate(ctx, payload.DataURI(), videoPromptFlag, videoAspectFlag)
	} else {
		job, err = sess.Video.Generate(ctx, videoPromptFlag, videoAspectFlag)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Video generation failed")
	}

	fmt.Printf("Job %s: %s (took %s)\n", job.ID, job.Status, cli.FormatElapsed(time.Since(start)))
	if job.ResultURI != "" {
		fmt.Printf("Video: %s\n", job.ResultURI)
	}
}
