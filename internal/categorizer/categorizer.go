// Package categorizer resolves category families for statement rows.
//
// Resolution is deterministic: families with a regex pattern are checked
// against the expense description first, in ascending creation order.
// Only when no pattern matches is the raw category label looked up by
// name. Unknown labels get a fresh family created for them.
package categorizer

import (
	"errors"
	"strings"

	"github.com/expenses-tracker/backend/internal/models"
	"gorm.io/gorm"
)

// DefaultLabel is used when a statement row carries no category text.
const DefaultLabel = "Uncategorized"

// batchSize bounds memory usage during reclassification.
const batchSize = 1000

// Resolve finds the category family for a description and raw label
// without writing anything.
//
// The boolean reports whether a family was found.
func Resolve(db *gorm.DB, description, label string) (models.CategoryFamily, bool, error) {
	if description != "" {
		var families []models.CategoryFamily
		err := db.
			Where("pattern != ''").
			Order("created_at ASC, id ASC").
			Find(&families).Error
		if err != nil {
			return models.CategoryFamily{}, false, err
		}

		for _, family := range families {
			if family.Matches(description) {
				return family, true, nil
			}
		}
	}

	var category models.Category
	err := db.
		Preload("CategoryFamily").
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(label)).
		First(&category).Error
	if err == nil {
		return category.CategoryFamily, true, nil
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return models.CategoryFamily{}, false, nil
	}

	return models.CategoryFamily{}, false, err
}

// ResolveOrCreate finds the category family for a description and raw
// label, creating a family named after the label when none matches.
//
// The family and its category are created in one transaction so a
// family without its category is never persisted.
func ResolveOrCreate(db *gorm.DB, description, label string) (models.CategoryFamily, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultLabel
	}

	family, found, err := Resolve(db, description, label)
	if err != nil {
		return models.CategoryFamily{}, err
	}

	if found {
		return family, nil
	}

	family = models.CategoryFamily{Name: label}
	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&family).Error
		if err != nil {
			return err
		}

		return tx.Create(&models.Category{Name: label, CategoryFamilyID: family.ID}).Error
	})
	if err != nil {
		return models.CategoryFamily{}, err
	}

	return family, nil
}

// Reclassify re-runs the resolution over all expenses that are not
// locked and moves the ones whose family changed.
//
// Expenses are read in fixed-size pages and the whole pass commits
// once. Re-running it is idempotent.
func Reclassify(db *gorm.DB) (int, error) {
	var changed int

	err := db.Transaction(func(tx *gorm.DB) error {
		for offset := 0; ; offset += batchSize {
			var expenses []models.Expense
			err := tx.
				Where("lock_category = ?", false).
				Order("created_at ASC, id ASC").
				Offset(offset).
				Limit(batchSize).
				Find(&expenses).Error
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				return nil
			}

			for _, expense := range expenses {
				family, err := ResolveOrCreate(tx, expense.Description, expense.OriginalCategory)
				if err != nil {
					return err
				}

				if family.ID == expense.CategoryFamilyID {
					continue
				}

				err = tx.Model(&expense).Update("category_family_id", family.ID).Error
				if err != nil {
					return err
				}

				changed++
			}

			if len(expenses) < batchSize {
				return nil
			}
		}
	})
	if err != nil {
		return 0, err
	}

	return changed, nil
}
