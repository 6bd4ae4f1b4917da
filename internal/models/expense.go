package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Calculation status values. An unset status means the expense follows
// the default rule: expenses with a negative amount (refunds, payments)
// are left out of budget calculations.
const (
	CalculationInclude = "INCLUDE"
	CalculationSkip    = "SKIP"
)

// Expense represents a single statement line from a bank or card export.
type Expense struct {
	DefaultModel
	Description       string          `gorm:"uniqueIndex:expense_identity"`
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8);uniqueIndex:expense_identity"`
	Date              time.Time       `gorm:"uniqueIndex:expense_identity"`
	OriginalCategory  string          // The category text as it appeared in the statement
	LockCategory      bool            // When true, reclassification runs leave this expense alone
	CalculationStatus string          // INCLUDE, SKIP or empty for the default rule
	UserID            *uuid.UUID      `gorm:"uniqueIndex:expense_identity"`
	User              User
	SourceID          uuid.UUID `gorm:"uniqueIndex:expense_identity"`
	Source            Source
	CategoryFamilyID  uuid.UUID
	CategoryFamily    CategoryFamily
}

func (e Expense) Self() string {
	return "Expense"
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return
}

// BeforeSave
//   - trims whitespace from string fields
//   - truncates the date to midnight UTC
//   - verifies the calculation status and the source reference
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Description = strings.TrimSpace(e.Description)
	e.OriginalCategory = strings.TrimSpace(e.OriginalCategory)
	e.CalculationStatus = strings.TrimSpace(e.CalculationStatus)

	if e.CalculationStatus != "" && e.CalculationStatus != CalculationInclude && e.CalculationStatus != CalculationSkip {
		return ErrInvalidCalculation
	}

	if e.SourceID == uuid.Nil {
		return ErrExpenseSourceMissing
	}

	// Ensure that the User ID is nil and not a pointer to a nil UUID
	// when it is set
	if e.UserID != nil && *e.UserID == uuid.Nil {
		e.UserID = nil
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	}
	e.Date = time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)

	return
}

// Included reports whether the expense counts towards budget and
// source calculations.
//
// Negative amounts are excluded unless explicitly marked INCLUDE, and
// SKIP always wins.
func (e Expense) Included() bool {
	if e.CalculationStatus == CalculationSkip {
		return false
	}

	return !e.Amount.IsNegative() || e.CalculationStatus == CalculationInclude
}
