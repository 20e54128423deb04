package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rhyrak/labgrid/internal/xlsxio"
)

// newReader returns a reader that tolerates ragged rows and stray quotes.
func newReader(in io.Reader, delim rune) *csv.Reader {
	r := csv.NewReader(in)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// ReadRows reads every row of a schedule file. Workbooks are read from their first sheet.
func ReadRows(path string, delim rune) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxio.ReadRows(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := newReader(f, delim).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}
