package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/oureatools/ourea/imp"
)

var previewWidth int

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <heightmap-image>",
	Short: "Render a heightmap image as ASCII art in the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := imp.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(imp.ASCII(img, previewWidth))
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 80, "width of the rendering in characters")
}
