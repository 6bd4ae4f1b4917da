package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrExpenseExists is returned when the expense identity
	// (description, amount, date, user, source) already exists. Ingestion
	// converts it into the "existing" outcome instead of failing.
	ErrExpenseExists = errors.New("an expense with the same description, amount, date, user and source already exists")

	ErrCategoryFamilyNameNotUnique = errors.New("the category family name is already in use")
	ErrSourceNameNotUnique         = errors.New("the source name is already in use")
	ErrUserNameNotUnique           = errors.New("the username is already in use")
	ErrBudgetExists                = errors.New("a budget for this category family and frequency already exists")

	ErrInvalidRegexPattern  = errors.New("the regex pattern does not compile")
	ErrInvalidFrequency     = errors.New("the budget frequency must be MONTHLY or YEARLY")
	ErrInvalidCalculation   = errors.New("the calculation status must be INCLUDE, SKIP or unset")
	ErrCombineSameFamily    = errors.New("a category family cannot be combined with itself")
	ErrExpenseSourceMissing = errors.New("an expense must reference a source")
)
