package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteTable prints results as an aligned table.
func WriteTable(w io.Writer, title string, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 4, ' ', 0)
	if title != "" {
		fmt.Fprintf(tw, "%s\n", title)
	}
	fmt.Fprintln(tw, "Dataset Size (n)\tExecution Time (ms)\tMatches Found\t")
	fmt.Fprintln(tw, "-----\t-----\t-----\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%.4f\t%d\t\n", r.Size, r.Milliseconds(), r.Matches)
	}
	return tw.Flush()
}

// WriteCSV writes results as size,elapsed_ms,matches rows for plotting.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"size", "elapsed_ms", "matches"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.Milliseconds(), 'f', 4, 64),
			strconv.Itoa(r.Matches),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
