package csvio

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/labgrid/pkg/model"
)

// ExportIntervals writes every interval of the week as one CSV row to path.
// The file is replaced if it exists.
func ExportIntervals(week model.Week, path string) error {
	rows := week.Rows()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return err
	}
	return out.Close()
}

// ExportIntervalsString formats the week like ExportIntervals and returns the CSV text.
func ExportIntervalsString(week model.Week) (string, error) {
	rows := week.Rows()
	return gocsv.MarshalString(&rows)
}
