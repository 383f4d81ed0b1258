package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-backend/services"
	"reservas-backend/store"
	"reservas-backend/utils"
)

// CategoryController handles the activity catalogue endpoints
type CategoryController struct {
	Store *store.Store
}

// ListCategories returns the current catalogue
func (cc *CategoryController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.Categories())
}

// ImportCategories reads category names from an uploaded workbook and
// replaces the whole catalogue with them. A file that cannot be read as a
// spreadsheet is rejected without touching the current categories.
func (cc *CategoryController) ImportCategories(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "missing file upload")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "could not read upload")
		return
	}
	defer file.Close()

	categories, err := services.ParseCategories(file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWorkbook) {
			utils.RespondWithError(c, http.StatusUnprocessableEntity, "invalid workbook file")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "could not parse workbook")
		return
	}

	cc.Store.ReplaceCategories(categories)
	c.JSON(http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
	})
}
