package v1

import (
	"fmt"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name             string    `json:"name" example:"Restaurants" default:""`                           // Name of the category
	CategoryFamilyID uuid.UUID `json:"categoryFamilyId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the family the category belongs to
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:             editable.Name,
		CategoryFamilyID: editable.CategoryFamilyID,
	}
}

type CategoryLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`        // The category itself
	Family string `json:"family" example:"https://example.com/api/v1/category-families/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // The family the category belongs to
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:             model.Name,
			CategoryFamilyID: model.CategoryFamilyID,
		},
		Links: CategoryLinks{
			Self:   fmt.Sprintf("%s/categories/%s", httputil.RequestPathV1(c), model.ID),
			Family: fmt.Sprintf("%s/category-families/%s", httputil.RequestPathV1(c), model.CategoryFamilyID),
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
