package models

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// CategoryFamily groups raw statement categories for budgeting.
//
// A family can carry a regex pattern. During classification, patterned
// families are checked against the expense description before any
// category name lookup happens.
type CategoryFamily struct {
	DefaultModel
	Name    string `gorm:"uniqueIndex"`
	Pattern string // Optional regex, matched case-insensitively against descriptions
}

func (f CategoryFamily) Self() string {
	return "CategoryFamily"
}

// BeforeSave
//   - trims whitespace from string fields
//   - verifies that the pattern compiles
func (f *CategoryFamily) BeforeSave(_ *gorm.DB) (err error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Pattern = strings.TrimSpace(f.Pattern)

	if f.Pattern != "" {
		_, err := regexp.Compile("(?i)" + f.Pattern)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidRegexPattern, f.Pattern)
		}
	}

	return nil
}

// Matches reports whether the family's pattern matches the description.
// Families without a pattern never match.
func (f CategoryFamily) Matches(description string) bool {
	if f.Pattern == "" || description == "" {
		return false
	}

	match, err := regexp.MatchString("(?i)"+f.Pattern, description)
	if err != nil {
		return false
	}

	return match
}

// Categories returns all categories recorded under this family.
func (f CategoryFamily) Categories(db *gorm.DB) (categories []Category, err error) {
	err = db.Where(&Category{CategoryFamilyID: f.ID}).Find(&categories).Error
	return
}

// Combine merges the loser family into this one.
//
// All expenses, budgets and categories of the loser are moved over, the
// survivor is renamed and the loser is deleted. The whole operation runs
// in a single transaction so that a budget uniqueness conflict rolls
// everything back.
func (f *CategoryFamily) Combine(db *gorm.DB, loser CategoryFamily, name string) error {
	if f.ID == loser.ID {
		return ErrCombineSameFamily
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// UpdateColumn skips the model hooks, which would reject the
		// empty batch model
		err := tx.Model(&Expense{}).Where(&Expense{CategoryFamilyID: loser.ID}).UpdateColumn("category_family_id", f.ID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Category{}).Where(&Category{CategoryFamilyID: loser.ID}).UpdateColumn("category_family_id", f.ID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Budget{}).Where(&Budget{CategoryFamilyID: loser.ID}).UpdateColumn("category_family_id", f.ID).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().Delete(&loser).Error
		if err != nil {
			return err
		}

		f.Name = name
		return tx.Model(f).Update("name", name).Error
	})
}
