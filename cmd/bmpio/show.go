package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpio/bmp"
	"github.com/davesmith10/bmpio/internal/term"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Render a small bitmap in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]
	img, err := bmp.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return term.Render(os.Stdout, img)
}
