package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"pricewatch/internal/apierror"
	"pricewatch/internal/dto"
	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct{ svc service.ExportService }

func NewExportHandler(svc service.ExportService) *ExportHandler { return &ExportHandler{svc: svc} }

// ComparisonPDF godoc
// @Summary Exportar comparação em PDF
// @Tags export
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /v1/export/comparison/pdf [get]
func (h *ExportHandler) ComparisonPDF(c *gin.Context) {
	file, err := h.svc.ComparisonPDF(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeFile(c, file)
}

// ComparisonExcel godoc
// @Summary Exportar comparação em Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /v1/export/comparison/excel [get]
func (h *ExportHandler) ComparisonExcel(c *gin.Context) {
	file, err := h.svc.ComparisonExcel(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeFile(c, file)
}

// HistoryPDF godoc
// @Summary Exportar histórico em PDF
// @Tags export
// @Produce application/pdf
// @Security BearerAuth
// @Param days query int false "Somente os últimos N dias"
// @Success 200 {file} binary
// @Router /v1/export/history/pdf [get]
func (h *ExportHandler) HistoryPDF(c *gin.Context) {
	days, ok := daysParam(c)
	if !ok {
		return
	}
	file, err := h.svc.HistoryPDF(c.Request.Context(), days)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeFile(c, file)
}

// HistoryExcel godoc
// @Summary Exportar histórico em Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param days query int false "Somente os últimos N dias"
// @Success 200 {file} binary
// @Router /v1/export/history/excel [get]
func (h *ExportHandler) HistoryExcel(c *gin.Context) {
	days, ok := daysParam(c)
	if !ok {
		return
	}
	file, err := h.svc.HistoryExcel(c.Request.Context(), days)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeFile(c, file)
}

func daysParam(c *gin.Context) (*int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("bad_request", "days inválido"))
		return nil, false
	}
	return &v, true
}

func writeFile(c *gin.Context, file *dto.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
