// Package output renders run reports. It never imports app or cli.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"memcheck/pkg/api"
)

// WriteText prints the report as a single TSV row, optionally headed.
func WriteText(w io.Writer, rep api.ReportV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "seed\tengine\tworkers\titerations\tfirst\tlast\twords\tbit_errors\tstatus"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%s\n",
		rep.Seed, rep.Engine, rep.Workers, rep.Iterations,
		rep.First, rep.Last, rep.Words, rep.BitErrors, rep.Status,
	)
	return err
}

// WriteJSON prints the report as indented JSON.
func WriteJSON(w io.Writer, rep api.ReportV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
