package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type GetOrCreateClientRequest struct {
	Code string `json:"code" validate:"required,min=1,max=50"`
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type CreateSKURequest struct {
	ClientID     uint    `json:"client_id" validate:"required"`
	Code         string  `json:"code" validate:"required,min=1,max=100"`
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder int     `json:"display_order" validate:"min=0"`
}

// CreateEvidenceRequest records metadata for a file already stored elsewhere
// (the upload endpoint stores the bytes itself and fills these fields).
type CreateEvidenceRequest struct {
	ClientID    uint    `json:"client_id" validate:"required"`
	FileURL     string  `json:"file_url" validate:"required"`
	FileName    string  `json:"file_name" validate:"required,max=255"`
	FileType    string  `json:"file_type" validate:"required,max=50"`
	FileSize    int64   `json:"file_size" validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type SKUResponse struct {
	ID           uint    `json:"id"`
	ClientID     uint    `json:"client_id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

type EvidenceResponse struct {
	ID          uint      `json:"id"`
	ClientID    uint      `json:"client_id"`
	FileURL     string    `json:"file_url"`
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	Description *string   `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
