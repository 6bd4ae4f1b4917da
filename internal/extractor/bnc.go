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

// bncHeaders are the required columns of a BNC statement export.
var bncHeaders = []string{"Date", "card Number", "Description", "Category", "Debit", "Credit"}

// BNC parses semicolon-delimited BNC card exports. The amount is split
// over a Debit and a Credit column, and each row carries the card
// number so one file can cover several cards.
type BNC struct{}

func (BNC) Name() string {
	return "BNC CSV"
}

func (BNC) Probe(file *File) bool {
	defer file.Rewind()

	if !strings.HasSuffix(strings.ToLower(file.Name), ".csv") {
		return false
	}

	records, err := readRecords(file, ';', 0)
	if err != nil || len(records) == 0 {
		return false
	}

	return headerIndex(records[0]).contains(bncHeaders...)
}

func (BNC) Parse(db *gorm.DB, file *File, source *models.Source) ([]Row, error) {
	records, err := readRecords(file, ';', 0)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidFile, file.Name)
	}

	h := headerIndex(records[0])

	// Candidate sources for card number matching
	var sources []models.Source
	if source != nil {
		sources = []models.Source{*source}
	} else {
		err := db.Where(&models.Source{Type: models.SourceTypeBNC}).Find(&sources).Error
		if err != nil {
			return nil, err
		}
	}

	var rows []Row
	for _, record := range records[1:] {
		description := h.get(record, "Description")
		dateText := h.get(record, "Date")
		cardNumber := strings.ReplaceAll(h.get(record, "card Number"), "*", "")

		if description == "" || dateText == "" || cardNumber == "" {
			log.Warn().Str("file", file.Name).Msgf("skipping row with missing description, date or card number: %v", record)
			continue
		}

		date, err := time.Parse("2006-01-02", dateText)
		if err != nil {
			log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable date %q", dateText)
			continue
		}

		rowSource := source
		if rowSource == nil {
			for i := range sources {
				if sources[i].CardNumber == cardNumber {
					rowSource = &sources[i]
					break
				}
			}

			if rowSource == nil {
				return nil, fmt.Errorf("%w: no matching source found for card number %s", ErrNoSource, cardNumber)
			}
		}

		// Debit is the spend column. An empty or zero debit means the
		// row is a credit, recorded with the sign flipped.
		amount, err := decimal.NewFromString(cleanAmount(h.get(record, "Debit")))
		if err != nil || amount.IsZero() {
			credit, err := decimal.NewFromString(cleanAmount(h.get(record, "Credit")))
			if err != nil {
				log.Warn().Str("file", file.Name).Msgf("skipping row with unparseable amount: %v", record)
				continue
			}
			amount = credit.Neg()
		}

		rows = append(rows, Row{
			Description: description,
			Amount:      amount,
			Date:        date,
			Category:    h.get(record, "Category"),
			SourceID:    rowSource.ID,
		})
	}

	return rows, nil
}
