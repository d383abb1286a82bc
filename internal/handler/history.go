package handler

import (
	"net/http"
	"strconv"

	"pricewatch/internal/apierror"
	"pricewatch/internal/dto"
	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct{ svc service.ComparisonService }

func NewHistoryHandler(svc service.ComparisonService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List godoc
// @Summary Histórico de mudanças de preço
// @Description Trilha de auditoria imutável, mais recente primeiro. Filtros conjuntivos opcionais.
// @Tags historico
// @Produce json
// @Security BearerAuth
// @Param product_id query int false "Filtrar por produto"
// @Param competitor_id query int false "Filtrar por concorrente"
// @Param days query int false "Somente os últimos N dias"
// @Success 200 {array} dto.HistoryEntry
// @Router /v1/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	filter, ok := historyFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.History(c.Request.Context(), filter))
}

// historyFilter parses the optional query filters shared by the history
// listing and the history exports.
func historyFilter(c *gin.Context) (dto.HistoryFilter, bool) {
	var filter dto.HistoryFilter

	if raw := c.Query("product_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("bad_request", "product_id inválido"))
			return filter, false
		}
		id := uint(v)
		filter.ProductID = &id
	}
	if raw := c.Query("competitor_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("bad_request", "competitor_id inválido"))
			return filter, false
		}
		id := uint(v)
		filter.CompetitorID = &id
	}
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, apierror.New("bad_request", "days inválido"))
			return filter, false
		}
		filter.Days = &v
	}
	return filter, true
}
