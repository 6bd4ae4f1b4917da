package models

import (
	"time"

	"github.com/expenses-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget frequencies.
const (
	FrequencyMonthly = "MONTHLY"
	FrequencyYearly  = "YEARLY"
)

// Budget is a recurring spending target for a category family. There is
// at most one budget per family and frequency.
type Budget struct {
	DefaultModel
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency        string          `gorm:"uniqueIndex:budget_family_frequency,priority:2"`
	CategoryFamilyID uuid.UUID       `gorm:"uniqueIndex:budget_family_frequency,priority:1"`
	CategoryFamily   CategoryFamily
}

func (b Budget) Self() string {
	return "Budget"
}

// BeforeSave verifies the frequency.
func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	if b.Frequency != FrequencyMonthly && b.Frequency != FrequencyYearly {
		return ErrInvalidFrequency
	}

	return nil
}

// Average computes the average spend against this budget's category
// family for the window.
//
// Monthly budgets divide the sum by the number of calendar months the
// window touches, yearly budgets by the number of years. A window too
// short to contain a single full period reports the raw sum.
func (b Budget) Average(db *gorm.DB, from, until *time.Time) (decimal.Decimal, error) {
	start, end, err := ResolveWindow(db, from, until)
	if err != nil {
		return decimal.Zero, err
	}

	expenses, err := calculationExpenses(db, start, end, b.CategoryFamilyID)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, expense := range expenses {
		sum = sum.Add(expense.Amount)
	}

	span := types.Between(start, end)

	var periods int
	if b.Frequency == FrequencyYearly {
		periods = span.TotalYears()
	} else {
		periods = span.TotalMonths()
	}

	if periods == 0 {
		return sum, nil
	}

	return sum.Div(decimal.NewFromInt(int64(periods))), nil
}
