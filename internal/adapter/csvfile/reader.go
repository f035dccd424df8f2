// Package csvfile reads crime-incident rows from the Cambridge crime log
// CSV export.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/crime-data-map/internal/domain"
)

// Column headers this reader resolves. Descriptive columns are optional;
// rows simply carry blanks when a column is absent from the file.
const (
	colCategory      = "Crime"
	colLat           = "Reporting Area Lat"
	colLon           = "Reporting Area Lon"
	colNeighborhood  = "Neighborhood"
	colLocationText  = "Location"
	colReportingArea = "Reporting Area"
	colReportDate    = "Date of Report"
)

var requiredColumns = []string{colCategory, colLat, colLon, colReportDate}

// Reader extracts raw incident records from a CSV file.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a Reader for the given CSV path.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Extract reads every data row from the CSV. Any failure to open or parse
// the file, or a header missing a required column, is a
// domain.DataSourceError; malformed rows inside a structurally valid file
// do not occur at this layer (coordinate validation happens during
// cleaning).
func (r *Reader) Extract() ([]domain.RawRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, &domain.DataSourceError{Path: r.path, Err: err}
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Cambridge exports occasionally pad short rows; tolerate ragged widths
	// and treat missing cells as blank instead of failing the whole file.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domain.DataSourceError{Path: r.path, Err: errors.New("empty file")}
		}
		return nil, &domain.DataSourceError{Path: r.path, Err: fmt.Errorf("read header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, &domain.DataSourceError{
				Path: r.path,
				Err:  fmt.Errorf("missing required column %q", name),
			}
		}
	}

	var records []domain.RawRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.DataSourceError{Path: r.path, Err: fmt.Errorf("read row: %w", err)}
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		records = append(records, domain.RawRecord{
			Category:      field(colCategory),
			Lat:           field(colLat),
			Lon:           field(colLon),
			Neighborhood:  field(colNeighborhood),
			LocationText:  field(colLocationText),
			ReportingArea: field(colReportingArea),
			ReportDate:    field(colReportDate),
		})
	}

	r.logger.Debug("csv extracted", "path", r.path, "rows", len(records))
	return records, nil
}
