package v1

import (
	"net/http"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSourceRoutes registers the routes for sources with
// the RouterGroup that is passed.
func RegisterSourceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSourceList)
		r.GET("", GetSources)
		r.POST("", CreateSource)
	}

	// Averages
	{
		r.OPTIONS("/averages", OptionsSourceAverages)
		r.GET("/averages", GetSourceAverages)
	}

	// Source with ID
	{
		r.OPTIONS("/:id", OptionsSourceDetail)
		r.GET("/:id", GetSource)
		r.DELETE("/:id", DeleteSource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sources
// @Success		204
// @Router			/v1/sources [options]
func OptionsSourceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sources
// @Success		204
// @Router			/v1/sources/averages [options]
func OptionsSourceAverages(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sources/{id} [options]
func OptionsSourceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Source{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		List sources
// @Description	Returns all sources
// @Tags			Sources
// @Produce		json
// @Success		200	{object}	SourceListResponse
// @Failure		500	{object}	SourceListResponse
// @Router			/v1/sources [get]
func GetSources(c *gin.Context) {
	var sources []models.Source
	err := models.DB.Order("created_at ASC").Find(&sources).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SourceListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Source, 0, len(sources))
	for _, source := range sources {
		data = append(data, newSource(c, source))
	}

	c.JSON(http.StatusOK, SourceListResponse{Data: data})
}

// @Summary		Create source
// @Description	Creates a new source
// @Tags			Sources
// @Produce		json
// @Success		201		{object}	SourceResponse
// @Failure		400		{object}	SourceResponse
// @Failure		409		{object}	SourceResponse
// @Failure		500		{object}	SourceResponse
// @Param			source	body		SourceEditable	true	"Source"
// @Router			/v1/sources [post]
func CreateSource(c *gin.Context) {
	var editable SourceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &s,
		})
		return
	}

	source := editable.model()
	err = models.DB.Create(&source).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &s,
		})
		return
	}

	data := newSource(c, source)
	c.JSON(http.StatusCreated, SourceResponse{Data: &data})
}

// @Summary		Get source
// @Description	Returns a specific source
// @Tags			Sources
// @Produce		json
// @Success		200	{object}	SourceResponse
// @Failure		400	{object}	SourceResponse
// @Failure		404	{object}	SourceResponse
// @Failure		500	{object}	SourceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sources/{id} [get]
func GetSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &s,
		})
		return
	}

	var source models.Source
	err = models.DB.First(&source, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SourceResponse{
			Error: &s,
		})
		return
	}

	data := newSource(c, source)
	c.JSON(http.StatusOK, SourceResponse{Data: &data})
}

// @Summary		Delete source
// @Description	Deletes a source
// @Tags			Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sources/{id} [delete]
func DeleteSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var source models.Source
	err = models.DB.First(&source, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&source).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Source averages
// @Description	Returns the average monthly spend per source for the window
// @Tags			Sources
// @Produce		json
// @Success		200	{object}	SourceAverageListResponse
// @Failure		400	{object}	SourceAverageListResponse
// @Failure		500	{object}	SourceAverageListResponse
// @Param			startDate	query	string	false	"Start date in YYYY-MM-DD format. Defaults to the earliest expense on record."
// @Param			endDate		query	string	false	"End date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/sources/averages [get]
func GetSourceAverages(c *gin.Context) {
	from, until, err := bindWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SourceAverageListResponse{
			Error: &s,
		})
		return
	}

	averages, err := models.SourceAverages(models.DB, from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SourceAverageListResponse{
			Error: &s,
		})
		return
	}

	data := make([]SourceAverage, 0, len(averages))
	for _, average := range averages {
		data = append(data, SourceAverage{
			Source:  newSource(c, average.Source),
			Average: average.Average,
		})
	}

	c.JSON(http.StatusOK, SourceAverageListResponse{Data: data})
}
