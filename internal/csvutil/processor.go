package csvutil

import (
	"encoding/csv"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/errors"
	"github.com/xuri/excelize/v2"
)

// ErrSkipRow can be returned by a parser to drop a row without logging it.
var ErrSkipRow = stdErrors.New("skip row")

// Row is a single record keyed by the header row's column names.
type Row map[string]string

// ProcessorOptions configures CSV processing behavior.
type ProcessorOptions struct {
	// Delimiter is the field separator. Defaults to a comma.
	Delimiter rune

	// RequiredColumns must all be present in the header row.
	RequiredColumns []string

	// SkipInvalid controls whether to skip invalid records or return an error.
	SkipInvalid bool
}

// Process reads a tabular file and parses each row into type T. Files with an
// .xlsx extension are read as spreadsheets (first sheet), anything else as
// CSV.
func Process[T any](filename string, parser func(Row) (T, error), opts ProcessorOptions) ([]T, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ProcessXLSX(filename, parser, opts)
	}
	return ProcessCSV(filename, parser, opts)
}

// ProcessCSV reads a CSV file and parses each row into type T.
func ProcessCSV[T any](filename string, parser func(Row) (T, error), opts ProcessorOptions) ([]T, error) {
	csvFile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = csvFile.Close() }()

	if fi, err := csvFile.Stat(); err != nil || fi.Size() == 0 {
		return nil, fmt.Errorf("CSV file is empty or cannot be read")
	}

	reader := csv.NewReader(csvFile)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkColumns(header, opts.RequiredColumns); err != nil {
		return nil, err
	}

	var items []T
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Error reading record", "error", err)
			continue
		}

		item, ok, err := parseRow(header, record, parser, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}

	return items, nil
}

// ProcessXLSX reads the first sheet of a spreadsheet and parses each row into
// type T. The first row is the header.
func ProcessXLSX[T any](filename string, parser func(Row) (T, error), opts ProcessorOptions) ([]T, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("spreadsheet is empty")
	}

	header := rows[0]
	if err := checkColumns(header, opts.RequiredColumns); err != nil {
		return nil, err
	}

	var items []T
	for _, record := range rows[1:] {
		item, ok, err := parseRow(header, record, parser, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}

	return items, nil
}

func parseRow[T any](header, record []string, parser func(Row) (T, error), opts ProcessorOptions) (T, bool, error) {
	row := make(Row, len(header))
	for i, name := range header {
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}

	item, err := parser(row)
	switch {
	case err == nil:
		return item, true, nil
	case stdErrors.Is(err, ErrSkipRow):
		return item, false, nil
	case opts.SkipInvalid:
		slog.Warn("Skipping invalid record", "error", err)
		return item, false, nil
	default:
		return item, false, fmt.Errorf("invalid record: %w", err)
	}
}

func checkColumns(header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingColumnError(missing...)
	}
	return nil
}
