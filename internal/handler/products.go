package handler

import (
	"net/http"

	"pricewatch/internal/dto"
	"pricewatch/internal/middleware"
	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create godoc
// @Summary Cadastrar produto
// @Description Cria um produto monitorado. O nome é único.
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Create(c.Request.Context(), req, claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Listar produtos
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Router /v1/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

// Get godoc
// @Summary Buscar produto por ID
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Atualizar produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Param body body dto.UpdateProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Remover produto
// @Description Remove o produto e seus preços atuais. O histórico é preservado.
// @Tags produtos
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
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
