package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/oureatools/ourea/dem"
	"github.com/oureatools/ourea/raster"
	"github.com/oureatools/ourea/report"
)

var histPath string

// histBins is the bin count of the elevation histogram.
const histBins = 50

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <input-raster>",
	Short: "Print the statistics of a raster without converting it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := raster.Reader{}.ReadGrid(args[0])
		if err != nil {
			log.Fatal(err)
		}

		vals := dem.ValidValues(grid)
		report.PrintStats(os.Stdout, dem.Summarize(vals))

		if histPath != "" {
			if err := report.SaveHistogram(histPath, vals, histBins); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Saved histogram to %s\n", histPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&histPath, "hist", "", "also write an elevation histogram to this path")
}
