package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/oureatools/ourea/imp"
	"github.com/oureatools/ourea/pipeline"
	"github.com/oureatools/ourea/raster"
)

var maxSize int

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input-raster> <output-image>",
	Short: "Convert an elevation raster into a grayscale heightmap",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()
		migrateDB(db)

		conv := &pipeline.Converter{
			Source:  raster.Reader{},
			Sink:    imp.FileSink{},
			Catalog: dbRecorder{db},
			MaxSize: maxSize,
			Out:     os.Stdout,
		}
		if err := conv.Run(args[0], args[1]); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().IntVar(&maxSize, "max-size", 0, "downsample the heightmap so its larger side fits this many pixels")
}
