package handler

import (
	"net/http"

	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
)

type CompetitorsHandler struct{ svc service.ComparisonService }

func NewCompetitorsHandler(svc service.ComparisonService) *CompetitorsHandler {
	return &CompetitorsHandler{svc: svc}
}

// List godoc
// @Summary Listar concorrentes
// @Description Os concorrentes monitorados, na ordem fixa das colunas da matriz.
// @Tags concorrentes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CompetitorResponse
// @Router /v1/competitors [get]
func (h *CompetitorsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Competitors(c.Request.Context()))
}
