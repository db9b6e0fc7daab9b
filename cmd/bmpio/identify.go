package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpio/bmp"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect bitmap header info",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	img, err := bmp.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("File:         %s\n", path)
	fmt.Printf("Dimensions:   %d x %d\n", img.Width(), img.Height())
	fmt.Printf("File size:    %d bytes\n", img.Header.FileSize)
	fmt.Printf("Pixel offset: %d bytes\n", img.Header.PixelOffset)
	fmt.Printf("Bit count:    %d\n", img.Info.BitCount)
	fmt.Printf("Compression:  %d\n", img.Info.Compression)
	fmt.Printf("Data size:    %d bytes\n", img.Info.DataSize)
	fmt.Printf("Row padding:  %d bytes\n", img.Padding())

	if !img.HasPixelData() {
		fmt.Println("Pixel data:   not decodable (expected 24-bit uncompressed)")
	} else {
		fmt.Printf("Pixel data:   %d pixels\n", img.Width()*img.Height())
	}
	return nil
}
