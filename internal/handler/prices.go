package handler

import (
	"net/http"
	"strconv"

	"pricewatch/internal/apierror"
	"pricewatch/internal/dto"
	"pricewatch/internal/middleware"
	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
)

type PricesHandler struct {
	svc        service.PriceService
	comparison service.ComparisonService
}

func NewPricesHandler(svc service.PriceService, comparison service.ComparisonService) *PricesHandler {
	return &PricesHandler{svc: svc, comparison: comparison}
}

// Register godoc
// @Summary Registrar preço
// @Description Upsert do preço (produto, concorrente) com trilha de auditoria: cria ou atualiza o preço vigente e grava a mudança no histórico na mesma transação.
// @Tags precos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegisterPriceRequest true "Preço observado"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/prices [post]
func (h *PricesHandler) Register(c *gin.Context) {
	var req dto.RegisterPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	if err := h.svc.Register(c.Request.Context(), req, claims.UserID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Remover preço
// @Description Remove o preço vigente e grava um registro "deleted" no histórico.
// @Tags precos
// @Security BearerAuth
// @Param id path int true "ID do preço"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/prices/{id} [delete]
func (h *PricesHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary Listar preços vigentes
// @Description Todos os preços atuais, opcionalmente filtrados por produto (?product_id=).
// @Tags precos
// @Produce json
// @Security BearerAuth
// @Param product_id query int false "Filtrar por produto"
// @Success 200 {array} dto.PriceResponse
// @Router /v1/prices [get]
func (h *PricesHandler) List(c *gin.Context) {
	if raw := c.Query("product_id"); raw != "" {
		productID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("bad_request", "product_id inválido"))
			return
		}
		resp, err := h.svc.ListByProduct(c.Request.Context(), uint(productID))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListByProduct godoc
// @Summary Preços vigentes de um produto
// @Tags precos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 200 {array} dto.PriceResponse
// @Router /v1/prices/product/{id} [get]
func (h *PricesHandler) ListByProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListByProduct(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Comparison godoc
// @Summary Matriz de comparação
// @Description Uma linha por produto com o preço de cada concorrente, média e última atualização.
// @Tags precos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ComparisonRow
// @Router /v1/prices/comparison [get]
func (h *PricesHandler) Comparison(c *gin.Context) {
	c.JSON(http.StatusOK, h.comparison.Matrix(c.Request.Context()))
}

// Average godoc
// @Summary Preço médio de um produto
// @Tags precos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 200 {object} map[string]interface{}
// @Router /v1/prices/average/{id} [get]
func (h *PricesHandler) Average(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product_id": id,
		"average":    h.comparison.AverageByProduct(c.Request.Context(), id),
	})
}
