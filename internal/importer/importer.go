// Package importer persists extracted statement rows with at-most-once
// semantics per expense identity.
package importer

import (
	"errors"

	"github.com/expenses-tracker/backend/internal/categorizer"
	"github.com/expenses-tracker/backend/internal/extractor"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/expenses-tracker/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FileFailure is the per-file failure report of an upload.
type FileFailure struct {
	Filename string `json:"filename" example:"statement.csv"`
	Reason   string `json:"reason" example:"no extractor found for statement.csv"`
}

// Result summarizes an upload. Partial success is the norm: files that
// fail are reported here, they never abort the batch.
type Result struct {
	Created  int           `json:"created" example:"17"`
	Existing int           `json:"existing" example:"3"`
	Failed   []FileFailure `json:"failed"`
}

// key is the expense identity used for deduplication.
type key struct {
	description string
	amount      string
	date        string
	sourceID    string
}

// Writer persists rows for a single file. It keeps an in-memory set of
// identities seen in the current batch: repeats within one file are
// legitimate (a genuinely repeated transaction) and only logged, the
// persisted store alone decides what counts as a duplicate.
type Writer struct {
	seen map[key]struct{}
}

func NewWriter() *Writer {
	return &Writer{seen: make(map[key]struct{})}
}

// Write persists one row, resolving its category family first. It
// reports whether the expense was created or already existed.
func (w *Writer) Write(db *gorm.DB, row extractor.Row) (created bool, err error) {
	family, err := categorizer.ResolveOrCreate(db, row.Description, row.Category)
	if err != nil {
		return false, err
	}

	date := types.Day(row.Date)
	k := key{
		description: row.Description,
		amount:      row.Amount.String(),
		date:        date.Format("2006-01-02"),
		sourceID:    row.SourceID.String(),
	}

	if _, ok := w.seen[k]; ok {
		log.Warn().Msgf("repeated row in the same file, keeping it: %s, %s, %s", row.Description, row.Amount, k.date)
	} else if existing, err := w.lookup(db, row); err != nil {
		return false, err
	} else if existing {
		return false, nil
	}

	expense := models.Expense{
		Description:      row.Description,
		Amount:           row.Amount,
		Date:             date,
		OriginalCategory: row.Category,
		SourceID:         row.SourceID,
		CategoryFamilyID: family.ID,
	}

	err = db.Create(&expense).Error
	if errors.Is(err, models.ErrExpenseExists) {
		// Lost a race against a concurrent upload, same outcome as the
		// lookup finding it
		return false, nil
	}
	if err != nil {
		return false, err
	}

	w.seen[k] = struct{}{}
	return true, nil
}

func (w *Writer) lookup(db *gorm.DB, row extractor.Row) (bool, error) {
	var count int64
	err := db.Model(&models.Expense{}).
		Where("description = ? AND amount = ? AND date(date) = date(?) AND source_id = ? AND user_id IS NULL",
			row.Description, row.Amount, types.Day(row.Date), row.SourceID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ImportFile extracts one file and persists its rows inside a single
// transaction. A failure anywhere in the file leaves nothing behind.
func ImportFile(db *gorm.DB, file *extractor.File, source *models.Source) (created, existing int, err error) {
	var parser extractor.Parser
	if source != nil {
		parser, err = extractor.ForSource(*source, file.Name)
	} else {
		parser, err = extractor.Detect(file)
	}
	if err != nil {
		return 0, 0, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		rows, err := parser.Parse(tx, file, source)
		if err != nil {
			return err
		}

		writer := NewWriter()
		for _, row := range rows {
			ok, err := writer.Write(tx, row)
			if err != nil {
				return err
			}

			if ok {
				created++
			} else {
				existing++
			}
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return created, existing, nil
}

// Import processes an upload of several files sequentially. Each file
// runs in its own transaction: a broken file is reported in the result
// and does not touch the outcome of the others.
func Import(db *gorm.DB, files []*extractor.File, source *models.Source) Result {
	result := Result{Failed: []FileFailure{}}

	for _, file := range files {
		log.Info().Str("file", file.Name).Msg("processing statement file")

		created, existing, err := ImportFile(db, file, source)
		if err != nil {
			result.Failed = append(result.Failed, FileFailure{Filename: file.Name, Reason: err.Error()})
			continue
		}

		result.Created += created
		result.Existing += existing
	}

	return result
}
