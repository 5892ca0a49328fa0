// Package report prints the user-facing output of a conversion run.
package report

import (
	"fmt"
	"io"

	"github.com/oureatools/ourea/dem"
)

// FlatWarning is shown when the valid data range collapses and the
// heightmap degrades to a uniform mid-gray.
const FlatWarning = "Warning: The valid data range is zero. All values are the same. Output will be a flat 128 grayscale."

// Print the statistics block
func PrintStats(w io.Writer, s dem.Stats) {
	fmt.Fprintln(w, "=== Data Statistics ===")
	fmt.Fprintf(w, "  Minimum Value: %g\n", s.Min)
	fmt.Fprintf(w, "  Maximum Value: %g\n", s.Max)
	fmt.Fprintf(w, "  Mean Value:    %g\n", s.Mean)
	fmt.Fprintf(w, "  Std. Dev.:     %g\n", s.StdDev)
	fmt.Fprintf(w, "  Elevation Range: %g\n", s.Range())
	fmt.Fprintln(w, "=======================")
	fmt.Fprintln(w)
}

// Report the degenerate-range warning
func PrintFlatWarning(w io.Writer) {
	fmt.Fprintln(w, FlatWarning)
}

// Confirm where the heightmap was written
func PrintSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "Saved heightmap to %s\n", path)
}
