package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpio/bmp"
)

var channelCmd = &cobra.Command{
	Use:   "channel [file]",
	Short: "Isolate a single color channel",
	Args:  cobra.ExactArgs(1),
	RunE:  runChannel,
}

func init() {
	channelCmd.Flags().StringP("channel", "c", "", "Channel to keep (red, green, blue)")
	channelCmd.Flags().StringP("output", "o", "", "Output BMP file")
	channelCmd.MarkFlagRequired("channel")
	channelCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(channelCmd)
}

func runChannel(cmd *cobra.Command, args []string) error {
	path := args[0]
	channel, _ := cmd.Flags().GetString("channel")
	outputPath, _ := cmd.Flags().GetString("output")

	if channel != "red" && channel != "green" && channel != "blue" {
		return fmt.Errorf("invalid channel %q: only red, green and blue are supported", channel)
	}

	img, err := bmp.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !img.HasPixelData() {
		return bmp.ErrNoPixelData
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			p, err := img.GetPixel(x, y)
			if err != nil {
				return err
			}
			switch channel {
			case "red":
				p.G, p.B = 0, 0
			case "green":
				p.R, p.B = 0, 0
			case "blue":
				p.R, p.G = 0, 0
			}
			if err := img.SetPixel(x, y, p); err != nil {
				return err
			}
		}
	}

	if err := img.Save(outputPath); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}

	fmt.Printf("Wrote %s channel of %s → %s\n", channel, path, outputPath)
	return nil
}
