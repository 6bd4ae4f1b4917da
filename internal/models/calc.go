package models

import (
	"errors"
	"time"

	"github.com/expenses-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ResolveWindow determines the effective calculation window.
//
// A missing start falls back to the date of the earliest expense on
// record, a missing end to today. Both bounds are inclusive.
func ResolveWindow(db *gorm.DB, from, until *time.Time) (start, end time.Time, err error) {
	if until != nil {
		end = types.Day(*until)
	} else {
		end = types.Day(time.Now().In(time.UTC))
	}

	if from != nil {
		start = types.Day(*from)
		return
	}

	var earliest Expense
	err = db.Order("date ASC").First(&earliest).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			// No expenses at all. Every average is zero, the window
			// just needs to be valid.
			return end, end, nil
		}

		return time.Time{}, time.Time{}, err
	}

	return types.Day(earliest.Date), end, nil
}

// calculationExpenses returns the expenses counting toward averages for
// the window, optionally restricted to a category family.
//
// The inclusion rule cannot be expressed as a plain column filter since
// the calculation status interacts with the amount sign, so the filter
// runs on the loaded rows.
func calculationExpenses(db *gorm.DB, start, end time.Time, familyID uuid.UUID) ([]Expense, error) {
	query := db.Where("date(date) >= date(?) AND date(date) <= date(?)", start, end)
	if familyID != uuid.Nil {
		query = query.Where(&Expense{CategoryFamilyID: familyID})
	}

	var all []Expense
	err := query.Find(&all).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, 0, len(all))
	for _, expense := range all {
		if expense.Included() {
			expenses = append(expenses, expense)
		}
	}

	return expenses, nil
}

// SourceAverage is the average monthly spend on a single source.
type SourceAverage struct {
	Source  Source
	Average decimal.Decimal
}

// SourceAverages computes the average monthly spend per source for the
// window. Sources without a single matching expense are left out.
func SourceAverages(db *gorm.DB, from, until *time.Time) ([]SourceAverage, error) {
	start, end, err := ResolveWindow(db, from, until)
	if err != nil {
		return nil, err
	}

	expenses, err := calculationExpenses(db, start, end, uuid.Nil)
	if err != nil {
		return nil, err
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, expense := range expenses {
		sums[expense.SourceID] = sums[expense.SourceID].Add(expense.Amount)
	}

	months := types.Between(start, end).TotalMonths()

	var sources []Source
	err = db.Order("created_at ASC").Find(&sources).Error
	if err != nil {
		return nil, err
	}

	averages := make([]SourceAverage, 0, len(sums))
	for _, source := range sources {
		sum, ok := sums[source.ID]
		if !ok {
			continue
		}

		average := sum
		if months > 0 {
			average = sum.Div(decimal.NewFromInt(int64(months)))
		}

		averages = append(averages, SourceAverage{Source: source, Average: average})
	}

	return averages, nil
}
