package v1

import (
	"fmt"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SourceEditable represents all user configurable parameters
type SourceEditable struct {
	Name string `json:"name" example:"Joint account" default:""` // Name of the source
	Type string `json:"type" example:"BNC" default:""`           // Institution type: BNC, ROGER, TRIANGLE or TANGERINE
	// Last digits of the card number, used to match statement files
	// that carry a card token
	CardNumber string `json:"cardNumber" example:"1234" default:""`
}

func (editable SourceEditable) model() models.Source {
	return models.Source{
		Name:       editable.Name,
		Type:       editable.Type,
		CardNumber: editable.CardNumber,
	}
}

type SourceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/sources/3b1ea324-d438-4419-882a-2fc91d71772f"` // The source itself
}

type Source struct {
	models.DefaultModel
	SourceEditable
	Links SourceLinks `json:"links"`
}

func newSource(c *gin.Context, model models.Source) Source {
	return Source{
		DefaultModel: model.DefaultModel,
		SourceEditable: SourceEditable{
			Name:       model.Name,
			Type:       model.Type,
			CardNumber: model.CardNumber,
		},
		Links: SourceLinks{
			Self: fmt.Sprintf("%s/sources/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type SourceResponse struct {
	Data  *Source `json:"data"`                                                          // Data for the Source
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SourceListResponse struct {
	Data  []Source `json:"data"`                                                          // List of Sources
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// SourceAverage is the average monthly spend on one source over the
// requested window.
type SourceAverage struct {
	Source  Source          `json:"source"`                   // The source the average is for
	Average decimal.Decimal `json:"average" example:"421.11"` // Average monthly spend
}

type SourceAverageListResponse struct {
	Data  []SourceAverage `json:"data"`                                           // Averages per source
	Error *string         `json:"error" example:"dates must be in YYYY-MM-DD format"` // The error, if any occurred
}
