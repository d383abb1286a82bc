package handler

import (
	"net/http"

	"pricewatch/internal/apierror"
	"pricewatch/internal/dto"
	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
)

// maxEvidenceSize caps uploads at 15 MB, enough for photos of shelf labels.
const maxEvidenceSize = 15 << 20

type EvidenceHandler struct{ svc service.ClientService }

func NewEvidenceHandler(svc service.ClientService) *EvidenceHandler {
	return &EvidenceHandler{svc: svc}
}

// Upload godoc
// @Summary Enviar evidência (arquivo)
// @Description Recebe o arquivo via multipart, armazena os bytes no bucket e grava os metadados.
// @Tags evidencias
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID do cliente"
// @Param file formData file true "Arquivo de evidência"
// @Param description formData string false "Descrição"
// @Success 201 {object} dto.EvidenceResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/clients/{id}/evidence/upload [post]
func (h *EvidenceHandler) Upload(c *gin.Context) {
	clientID, ok := paramID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("bad_request", "arquivo ausente"))
		return
	}
	if fileHeader.Size > maxEvidenceSize {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("invalid_argument", "arquivo excede o limite de 15 MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer file.Close()

	var description *string
	if d := c.PostForm("description"); d != "" {
		description = &d
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := h.svc.UploadEvidence(c.Request.Context(), clientID,
		fileHeader.Filename, contentType, fileHeader.Size, file, description)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Create godoc
// @Summary Registrar evidência (metadados)
// @Description Grava os metadados de um arquivo já armazenado externamente.
// @Tags evidencias
// @Accept json
// @Produce json
// @Param body body dto.CreateEvidenceRequest true "Metadados da evidência"
// @Success 201 {object} dto.EvidenceResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/evidence [post]
func (h *EvidenceHandler) Create(c *gin.Context) {
	var req dto.CreateEvidenceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateEvidence(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListByClient godoc
// @Summary Listar evidências de um cliente
// @Tags evidencias
// @Produce json
// @Param id path int true "ID do cliente"
// @Success 200 {array} dto.EvidenceResponse
// @Router /v1/clients/{id}/evidence [get]
func (h *EvidenceHandler) ListByClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.EvidenceByClient(c.Request.Context(), id))
}

// Delete godoc
// @Summary Remover evidência
// @Tags evidencias
// @Param id path int true "ID da evidência"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/evidence/{id} [delete]
func (h *EvidenceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEvidence(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
