package v1

import (
	"time"

	"github.com/expenses-tracker/backend/internal/types"
	et_uuid "github.com/expenses-tracker/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID et_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// WindowQuery is the optional calculation window shared by all
// average endpoints and the expense list.
type WindowQuery struct {
	StartDate string `form:"startDate" example:"2024-01-01"` // Start date in YYYY-MM-DD format, inclusive
	EndDate   string `form:"endDate" example:"2024-12-31"`   // End date in YYYY-MM-DD format, inclusive
}

// window parses the query parameters into the optional bounds the
// models package works with.
func (q WindowQuery) window() (from, until *time.Time, err error) {
	if q.StartDate != "" {
		parsed, err := types.ParseDate(q.StartDate)
		if err != nil {
			return nil, nil, errDateFormat
		}
		from = &parsed
	}

	if q.EndDate != "" {
		parsed, err := types.ParseDate(q.EndDate)
		if err != nil {
			return nil, nil, errDateFormat
		}
		until = &parsed
	}

	return from, until, nil
}

func bindWindow(c *gin.Context) (from, until *time.Time, err error) {
	var query WindowQuery
	_ = c.Bind(&query)

	return query.window()
}
