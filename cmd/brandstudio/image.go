package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jalvarado/brandstudio/internal/filehandler"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	imagePromptFlag      string
	imageInputFlag       string
	imageInstructionFlag string
	imageQuestionFlag    string
	imageAspectFlag      string
	imageOutFlag         string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Generate, edit, or analyze an image",
	Long: `Image generates a new image from a prompt, edits an existing image with a
natural-language instruction, or answers a question about one.

The mode follows the flags: --instruction edits --input, --question analyzes
--input, and otherwise --prompt generates from scratch.

Examples:
  brandstudio image --prompt "product shot on walnut table" --out shot.png
  brandstudio image --input shot.png --instruction "make the lighting warmer" --out warm.png
  brandstudio image --input shot.png --question "does this fit a premium coffee brand?"`,
	Run: runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imagePromptFlag, "prompt", "p", "", "Generation prompt")
	imageCmd.Flags().StringVarP(&imageInputFlag, "input", "i", "", "Input image file for edit/analyze")
	imageCmd.Flags().StringVar(&imageInstructionFlag, "instruction", "", "Edit instruction (requires --input)")
	imageCmd.Flags().StringVarP(&imageQuestionFlag, "question", "q", "", "Analysis question (requires --input)")
	imageCmd.Flags().StringVar(&imageAspectFlag, "aspect", "", "Aspect ratio, e.g. 1:1, 16:9")
	imageCmd.Flags().StringVarP(&imageOutFlag, "out", "o", "", "Output file for the resulting image")
	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	sess, _, _ := bootstrap(ctx)

	switch {
	case imageInstructionFlag != "":
		if imageInputFlag == "" {
			log.Fatal().Msg("--instruction requires --input")
		}
		payload, err := filehandler.LoadFile(imageInputFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read input image")
		}
		uri, err := sess.Image.Edit(ctx, payload.DataURI(), imageInstructionFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Image edit failed")
		}
		writeImage(uri)

	case imageQuestionFlag != "" || imageInputFlag != "":
		if imageInputFlag == "" {
			log.Fatal().Msg("--question requires --input")
		}
		payload, err := filehandler.LoadFile(imageInputFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read input image")
		}
		answer, err := sess.Image.Analyze(ctx, payload.DataURI(), imageQuestionFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Image analysis failed")
		}
		fmt.Println(answer)

	case imagePromptFlag != "":
		uri, err := sess.Image.Generate(ctx, imagePromptFlag, imageAspectFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Image generation failed")
		}
		writeImage(uri)

	default:
		log.Fatal().Msg("One of --prompt, --instruction, or --question is required")
	}
}

// writeImage saves a data URI to --out, or reports where the bytes went.
func writeImage(dataURI string) {
	payload, err := filehandler.ParseDataURI(dataURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Unexpected result format")
	}

	if imageOutFlag == "" {
		fmt.Printf("Generated %d bytes (%s). Pass --out to save the image.\n", len(payload.Data), payload.MIMEType)
		return
	}

	if err := os.WriteFile(imageOutFlag, payload.Data, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", imageOutFlag).Msg("Failed to write image")
	}
	fmt.Printf("Saved %s (%d bytes, %s)\n", imageOutFlag, len(payload.Data), payload.MIMEType)
}
