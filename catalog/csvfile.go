package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes the records to path, overwriting any existing file.
// The header row equals fieldNames; fields absent from a record are
// emitted as empty cells.
func WriteCSV(path string, records []*Record, fieldNames []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fieldNames); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(fieldNames))
	for _, rec := range records {
		for i, name := range fieldNames {
			value, _ := rec.Get(name)
			row[i] = value
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", rec.Path(), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
