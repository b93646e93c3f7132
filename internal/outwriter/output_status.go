package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// WriteStoreStatus outputs store health and record counts, dispatching based
// on the output format configured.
func WriteStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatusCSV(w, status)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for store status")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatusText(w, status)
		}, "Wrote report")
	}
}

func writeStatusCSV(w io.Writer, status schema.StoreStatus) error {
	header := []string{"backend", "connected", "total_habits", "total_completions", "oldest_record", "newest_record"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		oldest, newest := "", ""
		if !status.OldestRecord.IsZero() {
			oldest = status.OldestRecord.Format("2006-01-02")
			newest = status.NewestRecord.Format("2006-01-02")
		}
		record := []string{
			status.Backend,
			strconv.FormatBool(status.Connected),
			strconv.Itoa(status.TotalHabits),
			strconv.Itoa(status.TotalCompletions),
			oldest,
			newest,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		return nil
	})
}

func writeStatusText(w io.Writer, status schema.StoreStatus) error {
	fmt.Fprintf(w, "Store backend: %s\n", status.Backend)
	if !status.Connected {
		fmt.Fprintln(w, "Status:        not connected")
		return nil
	}
	fmt.Fprintln(w, "Status:        connected")
	fmt.Fprintf(w, "Habits:        %d\n", status.TotalHabits)
	fmt.Fprintf(w, "Completions:   %d\n", status.TotalCompletions)
	if !status.OldestRecord.IsZero() {
		fmt.Fprintf(w, "History:       %s to %s\n",
			status.OldestRecord.Format("2006-01-02"),
			status.NewestRecord.Format("2006-01-02"))
	}
	return nil
}
