package takeoff

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
)

// WriteCSV writes the table as semicolon-separated values, header row first.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(t.Columns); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to write CSV header")
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "failed to write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to flush CSV output")
	}
	return nil
}

// SaveCSV writes the table to a file, creating or truncating it.
func SaveCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to create %s", path)
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to close %s", path)
	}
	return nil
}
