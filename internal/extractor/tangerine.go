package extractor

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"gorm.io/gorm"
)

// Tangerine exports are latin-1 encoded and name the date column in
// French. Exports have been seen with the accent mangled, so several
// spellings are accepted.
var tangerineDateColumns = []string{"Date de l'opération", "Date de l'operation", "Date de l'opÃ©ration", "Date"}

var tangerineHeaders = []string{"Transaction", "Nom", "Description", "Montant"}

// tangerineCategoryPattern extracts the category a Tangerine export
// embeds in the free-text description, e.g. "... ~ Category: Parking".
var tangerineCategoryPattern = regexp.MustCompile(`(?i)Category\s*[:]\s*([^,~\n\r]+)`)

// Tangerine parses Tangerine card exports. Amounts in the file are
// negative for spends and get their sign flipped.
type Tangerine struct{}

func (Tangerine) Name() string {
	return "Tangerine CSV"
}

// readLatin1Records decodes the file from latin-1 before CSV parsing.
func readLatin1Records(file *File) ([][]string, error) {
	raw, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(file.Reader))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = ','
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	return records, nil
}

func (Tangerine) Probe(file *File) bool {
	defer file.Rewind()

	if !strings.HasSuffix(strings.ToLower(file.Name), ".csv") {
		return false
	}

	records, err := readLatin1Records(file)
	if err != nil || len(records) == 0 {
		return false
	}

	h := headerIndex(records[0])
	if !h.contains(tangerineHeaders...) {
		return false
	}

	for _, column := range tangerineDateColumns {
		if h.contains(column) {
			return true
		}
	}

	return false
}

func (Tangerine) Parse(db *gorm.DB, file *File, source *models.Source) ([]Row, error) {
	records, err := readLatin1Records(file)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidFile, file.Name)
	}

	h := headerIndex(records[0])

	dateColumn := ""
	for _, column := range tangerineDateColumns {
		if h.contains(column) {
			dateColumn = column
			break
		}
	}
	if dateColumn == "" {
		return nil, fmt.Errorf("%w: %s has no date column", ErrInvalidFile, file.Name)
	}

	if source == nil {
		resolved, err := resolveSingleSource(db, models.SourceTypeTangerine)
		if err != nil {
			return nil, err
		}
		source = &resolved
	}

	var rows []Row
	for _, record := range records[1:] {
		dateText := h.get(record, dateColumn)
		date, err := time.Parse("01/02/2006", dateText)
		if err != nil {
			date, err = time.Parse("2006-01-02", dateText)
			if err != nil {
				log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable date %q", dateText)
				continue
			}
		}

		description := h.get(record, "Nom")
		if description == "" {
			log.Warn().Str("file", file.Name).Msgf("skipping row with missing merchant name: %v", record)
			continue
		}

		amount, err := decimal.NewFromString(cleanAmount(h.get(record, "Montant")))
		if err != nil {
			log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable amount %q", h.get(record, "Montant"))
			continue
		}

		// The file records spends as negative amounts
		amount = amount.Neg()

		category := "Uncategorized"
		if match := tangerineCategoryPattern.FindStringSubmatch(h.get(record, "Description")); match != nil {
			category = strings.TrimSpace(match[1])
		}

		rows = append(rows, Row{
			Description: description,
			Amount:      amount,
			Date:        date,
			Category:    category,
			SourceID:    source.ID,
		})
	}

	return rows, nil
}
