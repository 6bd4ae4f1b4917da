package v1

import (
	"net/http"
	"strings"

	"github.com/expenses-tracker/backend/internal/categorizer"
	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryFamilyRoutes registers the routes for category
// families with the RouterGroup that is passed.
//
// Families are not created directly: they appear when statements are
// ingested or categories are added, and disappear through combining.
func RegisterCategoryFamilyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryFamilyList)
		r.GET("", GetCategoryFamilies)
	}

	// Families with their categories
	{
		r.OPTIONS("/mapping", OptionsCategoryFamilyMapping)
		r.GET("/mapping", GetCategoryFamilyMapping)
	}

	// Merge two families
	{
		r.OPTIONS("/combine", OptionsCategoryFamilyCombine)
		r.PATCH("/combine", CombineCategoryFamilies)
	}

	// Batch reclassification
	{
		r.OPTIONS("/recalculate", OptionsCategoryFamilyRecalculate)
		r.POST("/recalculate", RecalculateCategoryFamilies)
	}

	// Family with ID
	{
		r.OPTIONS("/:id", OptionsCategoryFamilyDetail)
		r.GET("/:id", GetCategoryFamily)
		r.PATCH("/:id/regex", UpdateCategoryFamilyPattern)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryFamilies
// @Success		204
// @Router			/v1/category-families [options]
func OptionsCategoryFamilyList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryFamilies
// @Success		204
// @Router			/v1/category-families/mapping [options]
func OptionsCategoryFamilyMapping(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryFamilies
// @Success		204
// @Router			/v1/category-families/combine [options]
func OptionsCategoryFamilyCombine(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryFamilies
// @Success		204
// @Router			/v1/category-families/recalculate [options]
func OptionsCategoryFamilyRecalculate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryFamilies
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-families/{id} [options]
func OptionsCategoryFamilyDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CategoryFamily{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List category families
// @Description	Returns all category families
// @Tags			CategoryFamilies
// @Produce		json
// @Success		200	{object}	CategoryFamilyListResponse
// @Failure		500	{object}	CategoryFamilyListResponse
// @Router			/v1/category-families [get]
func GetCategoryFamilies(c *gin.Context) {
	var families []models.CategoryFamily
	err := models.DB.Order("name ASC").Find(&families).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CategoryFamily, 0, len(families))
	for _, family := range families {
		data = append(data, newCategoryFamily(c, family))
	}

	c.JSON(http.StatusOK, CategoryFamilyListResponse{Data: data})
}

// @Summary		Category family mapping
// @Description	Returns all category families together with their categories
// @Tags			CategoryFamilies
// @Produce		json
// @Success		200	{object}	CategoryFamilyListResponse
// @Failure		500	{object}	CategoryFamilyListResponse
// @Router			/v1/category-families/mapping [get]
func GetCategoryFamilyMapping(c *gin.Context) {
	var families []models.CategoryFamily
	err := models.DB.Order("name ASC").Find(&families).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CategoryFamily, 0, len(families))
	for _, family := range families {
		apiResource, err := newCategoryFamilyWithCategories(c, models.DB, family)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryFamilyListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, CategoryFamilyListResponse{Data: data})
}

// @Summary		Get category family
// @Description	Returns a specific category family
// @Tags			CategoryFamilies
// @Produce		json
// @Success		200	{object}	CategoryFamilyResponse
// @Failure		400	{object}	CategoryFamilyResponse
// @Failure		404	{object}	CategoryFamilyResponse
// @Failure		500	{object}	CategoryFamilyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-families/{id} [get]
func GetCategoryFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	var family models.CategoryFamily
	err = models.DB.First(&family, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryFamily(c, family)
	c.JSON(http.StatusOK, CategoryFamilyResponse{Data: &data})
}

// @Summary		Update classification pattern
// @Description	Sets the regex pattern of a category family. An empty pattern removes it.
// @Tags			CategoryFamilies
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryFamilyResponse
// @Failure		400		{object}	CategoryFamilyResponse
// @Failure		404		{object}	CategoryFamilyResponse
// @Failure		500		{object}	CategoryFamilyResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			pattern	body		PatternEditable	true	"Pattern"
// @Router			/v1/category-families/{id}/regex [patch]
func UpdateCategoryFamilyPattern(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	var family models.CategoryFamily
	err = models.DB.First(&family, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	var editable PatternEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	// Select forces the update even when the pattern is cleared
	family.Pattern = strings.TrimSpace(editable.Pattern)
	err = models.DB.Model(&family).Select("Pattern").Updates(&family).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryFamily(c, family)
	c.JSON(http.StatusOK, CategoryFamilyResponse{Data: &data})
}

// @Summary		Combine category families
// @Description	Merges one category family into another. Expenses, budgets and categories move to the surviving family, which is renamed. The other family is deleted.
// @Tags			CategoryFamilies
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryFamilyResponse
// @Failure		400		{object}	CategoryFamilyResponse
// @Failure		404		{object}	CategoryFamilyResponse
// @Failure		409		{object}	CategoryFamilyResponse
// @Failure		500		{object}	CategoryFamilyResponse
// @Param			combine	body		CombineEditable	true	"Families to combine"
// @Router			/v1/category-families/combine [patch]
func CombineCategoryFamilies(c *gin.Context) {
	var editable CombineEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	var survivor models.CategoryFamily
	err = models.DB.First(&survivor, editable.SurvivingID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	var loser models.CategoryFamily
	err = models.DB.First(&loser, editable.DeletingID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	name := strings.TrimSpace(editable.Name)
	if name == "" {
		name = survivor.Name
	}

	err = survivor.Combine(models.DB, loser, name)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	data, err := newCategoryFamilyWithCategories(c, models.DB, survivor)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryFamilyResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryFamilyResponse{Data: &data})
}

// @Summary		Reclassify expenses
// @Description	Reruns classification for all expenses whose category is not locked
// @Tags			CategoryFamilies
// @Produce		json
// @Success		200	{object}	ReclassifyResponse
// @Failure		500	{object}	ReclassifyResponse
// @Router			/v1/category-families/recalculate [post]
func RecalculateCategoryFamilies(c *gin.Context) {
	updated, err := categorizer.Reclassify(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReclassifyResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReclassifyResponse{Data: &ReclassifyResult{UpdatedExpenses: updated}})
}
