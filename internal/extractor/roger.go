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

// rogerHeaders are the columns a Rogers Bank activity export must
// carry. The export has more columns, these are the ones used.
var rogerHeaders = []string{"Date", "Posted Date", "Card Number", "Merchant Category Description", "Merchant Name", "Amount"}

// Roger parses comma-delimited Rogers Bank activity exports. The
// amount is one signed column with a currency symbol.
type Roger struct{}

func (Roger) Name() string {
	return "Roger CSV"
}

func (Roger) Probe(file *File) bool {
	defer file.Rewind()

	if !strings.HasSuffix(strings.ToLower(file.Name), ".csv") {
		return false
	}

	records, err := readRecords(file, ',', 0)
	if err != nil || len(records) == 0 {
		return false
	}

	return headerIndex(records[0]).contains(rogerHeaders...)
}

func (Roger) Parse(db *gorm.DB, file *File, source *models.Source) ([]Row, error) {
	records, err := readRecords(file, ',', 0)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidFile, file.Name)
	}

	h := headerIndex(records[0])

	// The CSV export has no per-row card number, so there has to be a
	// single candidate source
	if source == nil {
		resolved, err := resolveSingleSource(db, models.SourceTypeRoger)
		if err != nil {
			return nil, err
		}
		source = &resolved
	}

	var rows []Row
	for _, record := range records[1:] {
		description := h.get(record, "Merchant Name")
		dateText := h.get(record, "Date")
		if description == "" || dateText == "" {
			log.Warn().Str("file", file.Name).Msgf("skipping row with missing merchant name or date: %v", record)
			continue
		}

		date, err := time.Parse("2006-01-02", dateText)
		if err != nil {
			log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable date %q", dateText)
			continue
		}

		amount, err := decimal.NewFromString(cleanAmount(h.get(record, "Amount")))
		if err != nil {
			log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable amount %q", h.get(record, "Amount"))
			continue
		}

		category := h.get(record, "Merchant Category Description")
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
