package handler

import (
	"net/http"

	"pricewatch/internal/dto"
	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientsHandler struct{ svc service.ClientService }

func NewClientsHandler(svc service.ClientService) *ClientsHandler {
	return &ClientsHandler{svc: svc}
}

// GetOrCreate godoc
// @Summary Registrar cliente (idempotente)
// @Description Retorna o cliente do código informado, criando-o se não existir. Chamadas repetidas com o mesmo código devolvem o mesmo registro.
// @Tags clientes
// @Accept json
// @Produce json
// @Param body body dto.GetOrCreateClientRequest true "Código e nome do cliente"
// @Success 200 {object} dto.ClientResponse
// @Router /v1/clients [post]
func (h *ClientsHandler) GetOrCreate(c *gin.Context) {
	var req dto.GetOrCreateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GetOrCreate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary Listar clientes
// @Tags clientes
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Router /v1/clients [get]
func (h *ClientsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

// CreateSKU godoc
// @Summary Cadastrar SKU principal do cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param body body dto.CreateSKURequest true "Dados do SKU"
// @Success 201 {object} dto.SKUResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/skus [post]
func (h *ClientsHandler) CreateSKU(c *gin.Context) {
	var req dto.CreateSKURequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSKU(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSKUs godoc
// @Summary Listar SKUs de um cliente
// @Tags clientes
// @Produce json
// @Param id path int true "ID do cliente"
// @Success 200 {array} dto.SKUResponse
// @Router /v1/clients/{id}/skus [get]
func (h *ClientsHandler) ListSKUs(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.SKUsByClient(c.Request.Context(), id))
}

// DeleteSKU godoc
// @Summary Remover SKU
// @Tags clientes
// @Param id path int true "ID do SKU"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/skus/{id} [delete]
func (h *ClientsHandler) DeleteSKU(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSKU(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
