package extractor

import (
	"fmt"
	"strings"
	"time"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// triangleHeaders are the required columns of a Triangle (Canadian
// Tire) statement export.
var triangleHeaders = []string{"REF", "TRANSACTION DATE", "POSTED DATE", "TYPE", "DESCRIPTION", "Category", "AMOUNT"}

// triangleSkipLines is the free-form preamble before the header row.
const triangleSkipLines = 3

// Triangle parses Triangle statement exports. The table starts after a
// few lines of account information, and the file carries no card
// number, so there must be exactly one Triangle source.
type Triangle struct{}

func (Triangle) Name() string {
	return "Triangle CSV"
}

func (Triangle) Probe(file *File) bool {
	defer file.Rewind()

	if !strings.HasSuffix(strings.ToLower(file.Name), ".csv") {
		return false
	}

	records, err := readRecords(file, ',', triangleSkipLines)
	if err != nil || len(records) == 0 {
		return false
	}

	return headerIndex(records[0]).contains(triangleHeaders...)
}

func (Triangle) Parse(db *gorm.DB, file *File, source *models.Source) ([]Row, error) {
	records, err := readRecords(file, ',', triangleSkipLines)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidFile, file.Name)
	}

	h := headerIndex(records[0])

	if source == nil {
		resolved, err := resolveSingleSource(db, models.SourceTypeTriangle)
		if err != nil {
			return nil, err
		}
		source = &resolved
	}

	var rows []Row
	for _, record := range records[1:] {
		description := h.get(record, "DESCRIPTION")
		dateText := h.get(record, "TRANSACTION DATE")
		if description == "" || dateText == "" {
			log.Warn().Str("file", file.Name).Msgf("skipping row with missing description or date: %v", record)
			continue
		}

		date, err := time.Parse("2006-01-02", dateText)
		if err != nil {
			log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable date %q", dateText)
			continue
		}

		amount, err := decimal.NewFromString(cleanAmount(h.get(record, "AMOUNT")))
		if err != nil {
			log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable amount %q", h.get(record, "AMOUNT"))
			continue
		}

		category := h.get(record, "Category")
		if category == "" {
			category = "Uncategorized"
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
