package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpio/internal/scene"
)

var composeCmd = &cobra.Command{
	Use:   "compose [scene.yaml]",
	Short: "Build a bitmap from a YAML scene description",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().StringP("output", "o", "", "Output BMP file")
	composeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	img, err := s.Render()
	if err != nil {
		return fmt.Errorf("rendering scene: %w", err)
	}

	if err := img.Save(outputPath); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}

	fmt.Printf("Composed %dx%d → %s (%d bytes)\n", img.Width(), img.Height(), outputPath, img.Header.FileSize)
	return nil
}
