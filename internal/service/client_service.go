package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"pricewatch/internal/dto"
	"pricewatch/internal/model"
	"pricewatch/internal/repository"

	"github.com/rs/zerolog/log"
)

// EvidenceStorage stores evidence file bytes. The S3 implementation lives in
// internal/infra; tests inject an in-memory stub.
type EvidenceStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (string, error)
	Remove(ctx context.Context, fileURL string) error
}

// ClientService covers client registration (get-or-create on code), a
// client's main SKUs and its evidence attachments.
type ClientService interface {
	GetOrCreate(ctx context.Context, req dto.GetOrCreateClientRequest) (*dto.ClientResponse, error)
	List(ctx context.Context) []dto.ClientResponse

	CreateSKU(ctx context.Context, req dto.CreateSKURequest) (*dto.SKUResponse, error)
	SKUsByClient(ctx context.Context, clientID uint) []dto.SKUResponse
	DeleteSKU(ctx context.Context, id uint) error

	CreateEvidence(ctx context.Context, req dto.CreateEvidenceRequest) (*dto.EvidenceResponse, error)
	UploadEvidence(ctx context.Context, clientID uint, fileName, fileType string, size int64, body io.Reader, description *string) (*dto.EvidenceResponse, error)
	EvidenceByClient(ctx context.Context, clientID uint) []dto.EvidenceResponse
	DeleteEvidence(ctx context.Context, id uint) error
}

type clientService struct {
	clients  repository.ClientRepository
	skus     repository.SKURepository
	evidence repository.EvidenceRepository
	storage  EvidenceStorage
}

func NewClientService(
	clients repository.ClientRepository,
	skus repository.SKURepository,
	evidence repository.EvidenceRepository,
	storage EvidenceStorage,
) ClientService {
	return &clientService{clients: clients, skus: skus, evidence: evidence, storage: storage}
}

// GetOrCreate is idempotent on code: the second call with the same code
// returns the existing client unchanged (first-write-wins on name). A
// concurrent create losing the unique-key race falls back to the winner's row.
func (s *clientService) GetOrCreate(ctx context.Context, req dto.GetOrCreateClientRequest) (*dto.ClientResponse, error) {
	if existing, err := s.clients.FindByCode(ctx, req.Code); err == nil {
		return clientToResponse(existing), nil
	}

	c := &model.Client{Code: req.Code, Name: req.Name}
	err := s.clients.Create(ctx, c)
	if err == nil {
		return clientToResponse(c), nil
	}
	if errors.Is(translate(err), ErrConflict) {
		winner, ferr := s.clients.FindByCode(ctx, req.Code)
		if ferr != nil {
			return nil, translate(ferr)
		}
		return clientToResponse(winner), nil
	}
	return nil, err
}

func (s *clientService) List(ctx context.Context) []dto.ClientResponse {
	clients, err := s.clients.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("clients unavailable, returning empty")
		return []dto.ClientResponse{}
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *clientToResponse(&clients[i]))
	}
	return out
}

func (s *clientService) CreateSKU(ctx context.Context, req dto.CreateSKURequest) (*dto.SKUResponse, error) {
	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		return nil, translate(err)
	}
	sku := &model.SKU{
		ClientID:     req.ClientID,
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.skus.Create(ctx, sku); err != nil {
		return nil, translate(err)
	}
	return skuToResponse(sku), nil
}

func (s *clientService) SKUsByClient(ctx context.Context, clientID uint) []dto.SKUResponse {
	skus, err := s.skus.ListByClient(ctx, clientID)
	if err != nil {
		log.Warn().Err(err).Uint("client_id", clientID).Msg("skus unavailable, returning empty")
		return []dto.SKUResponse{}
	}
	out := make([]dto.SKUResponse, 0, len(skus))
	for i := range skus {
		out = append(out, *skuToResponse(&skus[i]))
	}
	return out
}

func (s *clientService) DeleteSKU(ctx context.Context, id uint) error {
	if _, err := s.skus.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.skus.Delete(ctx, id)
}

func (s *clientService) CreateEvidence(ctx context.Context, req dto.CreateEvidenceRequest) (*dto.EvidenceResponse, error) {
	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		return nil, translate(err)
	}
	e := &model.Evidence{
		ClientID:    req.ClientID,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		Description: req.Description,
	}
	if err := s.evidence.Create(ctx, e); err != nil {
		return nil, translate(err)
	}
	return evidenceToResponse(e), nil
}

// UploadEvidence stores the file bytes in object storage, then records the
// metadata row pointing at the stored URL.
func (s *clientService) UploadEvidence(ctx context.Context, clientID uint, fileName, fileType string, size int64, body io.Reader, description *string) (*dto.EvidenceResponse, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, translate(err)
	}

	key := fmt.Sprintf("evidence/%d/%d_%s", clientID, time.Now().UnixNano(), fileName)
	url, err := s.storage.Upload(ctx, key, body, fileType, size)
	if err != nil {
		return nil, fmt.Errorf("upload evidence: %w", err)
	}

	return s.CreateEvidence(ctx, dto.CreateEvidenceRequest{
		ClientID:    clientID,
		FileURL:     url,
		FileName:    fileName,
		FileType:    fileType,
		FileSize:    size,
		Description: description,
	})
}

func (s *clientService) EvidenceByClient(ctx context.Context, clientID uint) []dto.EvidenceResponse {
	rows, err := s.evidence.ListByClient(ctx, clientID)
	if err != nil {
		log.Warn().Err(err).Uint("client_id", clientID).Msg("evidence unavailable, returning empty")
		return []dto.EvidenceResponse{}
	}
	out := make([]dto.EvidenceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *evidenceToResponse(&rows[i]))
	}
	return out
}

// DeleteEvidence removes the metadata row; the stored object is removed
// best-effort — a storage failure does not resurrect the row.
func (s *clientService) DeleteEvidence(ctx context.Context, id uint) error {
	e, err := s.evidence.FindByID(ctx, id)
	if err != nil {
		return translate(err)
	}
	if err := s.evidence.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Remove(ctx, e.FileURL); err != nil {
		log.Warn().Err(err).Str("file_url", e.FileURL).Msg("evidence object removal failed")
	}
	return nil
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func skuToResponse(s *model.SKU) *dto.SKUResponse {
	return &dto.SKUResponse{
		ID:           s.ID,
		ClientID:     s.ClientID,
		Code:         s.Code,
		Name:         s.Name,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
	}
}

func evidenceToResponse(e *model.Evidence) *dto.EvidenceResponse {
	return &dto.EvidenceResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		FileURL:     e.FileURL,
		FileName:    e.FileName,
		FileType:    e.FileType,
		FileSize:    e.FileSize,
		Description: e.Description,
		UploadedAt:  e.UploadedAt,
	}
}
