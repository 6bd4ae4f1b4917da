package v1

import (
	"errors"
	"net/http"

	"github.com/expenses-tracker/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrExpenseExists) ||
		errors.Is(err, models.ErrCategoryFamilyNameNotUnique) ||
		errors.Is(err, models.ErrSourceNameNotUnique) ||
		errors.Is(err, models.ErrUserNameNotUnique) ||
		errors.Is(err, models.ErrBudgetExists) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var errDateFormat = errors.New("dates must be in YYYY-MM-DD format")

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Upload errors
var errNoFilePost = errors.New("you must send at least one file to this endpoint")

// Category errors
var errCategoryExists = errors.New("the category already exists")
