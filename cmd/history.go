package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oureatools/ourea/models"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions from the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()
		migrateDB(db)

		convs, err := models.ListConversions(db, historyLimit)
		if err != nil {
			log.Fatal(err)
		}
		printHistory(os.Stdout, convs)
	},
}

func printHistory(w io.Writer, convs []models.Conversion) {
	tw := tabwriter.NewWriter(w, 5, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tINPUT\tOUTPUT\tSIZE\tMIN\tMAX\tFLAT\t")
	for _, c := range convs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dx%d\t%g\t%g\t%v\t\n",
			c.CreatedAt.Format("2006-01-02 15:04"),
			c.InputPath, c.OutputPath,
			c.Width, c.Height,
			c.Min, c.Max, c.Flat,
		)
	}
	tw.Flush()
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of conversions to list")
}
