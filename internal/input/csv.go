package input

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/unicostudio/b-ai-localization/internal/domain"
	"github.com/unicostudio/b-ai-localization/pkg/errors"
)

// Required source table columns. IDS carries the image identifier, EN the
// english text and LOCID the unique localization key.
var requiredColumns = []string{"IDS", "EN", "LOCID"}

// ReadSourceRows parses the source table at path into rows, keeping input
// order. The table is semicolon-delimited by default; if the header does not
// yield the required columns the file is re-parsed with commas before giving
// up. Rows with an empty LOCID are skipped.
func ReadSourceRows(path string) ([]domain.SourceRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewValidationError(
			fmt.Sprintf("cannot read source table: %v", err), "csv", path)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	records, err := parseRecords(data, ';')
	if err != nil || !hasRequiredColumns(records) {
		fallback, ferr := parseRecords(data, ',')
		if ferr == nil && hasRequiredColumns(fallback) {
			records = fallback
		} else if err != nil {
			return nil, errors.NewValidationError(
				fmt.Sprintf("cannot parse source table: %v", err), "csv", path)
		}
	}

	if len(records) == 0 {
		return nil, errors.NewValidationError("source table is empty", "csv", path)
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("source table is missing required columns: %s", strings.Join(missing, ", ")),
			strings.Join(missing, ", "), path)
	}

	rows := make([]domain.SourceRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.SourceRow{
			ImageID:     field(record, columns["IDS"]),
			EnglishText: field(record, columns["EN"]),
			LocID:       field(record, columns["LOCID"]),
		}
		if row.LocID == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRecords(data []byte, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

func hasRequiredColumns(records [][]string) bool {
	if len(records) == 0 {
		return false
	}
	seen := make(map[string]bool, len(records[0]))
	for _, name := range records[0] {
		seen[strings.ToUpper(strings.TrimSpace(name))] = true
	}
	for _, name := range requiredColumns {
		if !seen[name] {
			return false
		}
	}
	return true
}

func field(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}
