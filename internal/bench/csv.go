package bench

import (
	"encoding/csv"
	"fmt"
	"io"
)

var csvHeader = []string{
	"variant", "readers", "writers", "duration_ms",
	"read_ops", "write_ops", "reads_per_s", "writes_per_s", "total_per_s",
}

// WriteCSV writes one header row followed by one row per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: writing csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			string(r.Variant),
			fmt.Sprintf("%d", r.Readers),
			fmt.Sprintf("%d", r.Writers),
			fmt.Sprintf("%d", r.Duration.Milliseconds()),
			fmt.Sprintf("%d", r.ReadOps),
			fmt.Sprintf("%d", r.WriteOps),
			fmt.Sprintf("%.2f", r.ReadsPerS),
			fmt.Sprintf("%.2f", r.WritesPerS),
			fmt.Sprintf("%.2f", r.TotalPerS),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: writing csv row for %s: %w", r.Variant, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
