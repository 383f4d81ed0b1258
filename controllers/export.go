package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-backend/services"
	"reservas-backend/store"
	"reservas-backend/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController serves the spreadsheet download
type ExportController struct {
	Store *store.Store
}

// DownloadWorkbook streams the full reservation collection as a
// multi-sheet workbook. The workbook is built in memory first so a build
// failure can still produce a clean error response.
func (ec *ExportController) DownloadWorkbook(c *gin.Context) {
	var buf bytes.Buffer
	if err := services.ExportWorkbook(&buf, ec.Store.Reservations()); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "could not build workbook")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
