package extractor

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// readRecords parses the whole file as delimited text. skipLines raw
// lines are dropped before CSV parsing starts, for formats that prefix
// the table with free-form header information.
func readRecords(file *File, comma rune, skipLines int) ([][]string, error) {
	raw, err := io.ReadAll(file.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if skipLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) <= skipLines {
			return nil, fmt.Errorf("%w: file has fewer than %d lines", ErrInvalidFile, skipLines)
		}
		content = strings.Join(lines[skipLines:], "\n")
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	return records, nil
}

// header maps column names to their position in the header record.
type header map[string]int

func headerIndex(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[strings.TrimSpace(name)] = i
	}

	return h
}

// contains checks that every required column is present. The check is
// case-sensitive on purpose, institutions are consistent about their
// own header spelling.
func (h header) contains(names ...string) bool {
	for _, name := range names {
		if _, ok := h[name]; !ok {
			return false
		}
	}

	return true
}

// get returns the trimmed value of a column, or "" when the record is
// too short.
func (h header) get(record []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

// cleanAmount strips currency symbols and thousands separators.
func cleanAmount(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSpace(s)
}
