package tests

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"pricewatch/internal/dto"
	"pricewatch/internal/model"
	"pricewatch/internal/repository"
	"pricewatch/internal/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository for testing.
type stubProductRepo struct {
	products map[uint]*model.Product
	seq      uint
	fail     bool
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if r.fail {
		return errors.New("store down")
	}
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	p.ID = r.seq
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	if r.fail {
		return nil, errors.New("store down")
	}
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	if r.fail {
		return nil, errors.New("store down")
	}
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	for id, existing := range r.products {
		if id != p.ID && existing.Name == p.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	p.UpdatedAt = time.Now()
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubCompetitorRepo serves the fixed four-store population in seed order.
type stubCompetitorRepo struct {
	fail bool
}

var fixedCompetitors = []model.Competitor{
	{ID: 1, Name: "Dinho", Code: "DINHO"},
	{ID: 2, Name: "Adega Brasil", Code: "ADEGA_BRASIL"},
	{ID: 3, Name: "Franco", Code: "FRANCO"},
	{ID: 4, Name: "Diversos", Code: "DIVERSOS"},
}

func (r *stubCompetitorRepo) FindByID(_ context.Context, id uint) (*model.Competitor, error) {
	for i := range fixedCompetitors {
		if fixedCompetitors[i].ID == id {
			c := fixedCompetitors[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCompetitorRepo) List(_ context.Context) ([]model.Competitor, error) {
	if r.fail {
		return nil, errors.New("store down")
	}
	out := make([]model.Competitor, len(fixedCompetitors))
	copy(out, fixedCompetitors)
	return out, nil
}

var _ repository.CompetitorRepository = (*stubCompetitorRepo)(nil)

// stubPriceRepo keeps current prices in memory. Tx methods accept the nil
// *gorm.DB that runTx passes when DB() returns nil.
type stubPriceRepo struct {
	prices map[uint]*model.Price
	seq    uint
	fail   bool
}

func newStubPriceRepo() *stubPriceRepo {
	return &stubPriceRepo{prices: make(map[uint]*model.Price)}
}

func (r *stubPriceRepo) FindByID(_ context.Context, id uint) (*model.Price, error) {
	p, ok := r.prices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPriceRepo) ListByProduct(_ context.Context, productID uint) ([]model.Price, error) {
	if r.fail {
		return nil, errors.New("store down")
	}
	var out []model.Price
	for _, p := range r.prices {
		if p.ProductID == productID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompetitorID < out[j].CompetitorID })
	return out, nil
}

func (r *stubPriceRepo) ListAll(_ context.Context) ([]model.Price, error) {
	if r.fail {
		return nil, errors.New("store down")
	}
	out := make([]model.Price, 0, len(r.prices))
	for _, p := range r.prices {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].CompetitorID < out[j].CompetitorID
	})
	return out, nil
}

func (r *stubPriceRepo) FindByPairTx(_ *gorm.DB, productID, competitorID uint) (*model.Price, error) {
	for _, p := range r.prices {
		if p.ProductID == productID && p.CompetitorID == competitorID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPriceRepo) CreateTx(_ *gorm.DB, p *model.Price) error {
	r.seq++
	p.ID = r.seq
	if p.RegisteredAt.IsZero() {
		p.RegisteredAt = time.Now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.RegisteredAt
	}
	cp := *p
	r.prices[p.ID] = &cp
	return nil
}

func (r *stubPriceRepo) UpdateValueTx(_ *gorm.DB, id uint, value decimal.Decimal, registeredBy uint) error {
	p, ok := r.prices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Value = value
	p.RegisteredBy = registeredBy
	p.UpdatedAt = time.Now()
	return nil
}

func (r *stubPriceRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.prices, id)
	return nil
}

func (r *stubPriceRepo) DB() *gorm.DB { return nil }

var _ repository.PriceRepository = (*stubPriceRepo)(nil)

// stubHistoryRepo appends audit rows and reimplements the repository's
// filter/join semantics in memory: conjunctive filters, newest-first order,
// names resolved via LEFT-JOIN-style lookup (blank when the entity is gone).
type stubHistoryRepo struct {
	rows        []model.PriceHistory
	seq         uint
	products    *stubProductRepo
	competitors *stubCompetitorRepo
	fail        bool
}

func (r *stubHistoryRepo) CreateTx(_ *gorm.DB, h *model.PriceHistory) error {
	r.seq++
	h.ID = r.seq
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now()
	}
	r.rows = append(r.rows, *h)
	return nil
}

func (r *stubHistoryRepo) List(_ context.Context, filter dto.HistoryFilter) ([]dto.HistoryEntry, error) {
	if r.fail {
		return nil, errors.New("store down")
	}
	var cutoff time.Time
	if filter.Days != nil {
		cutoff = time.Now().Add(-time.Duration(*filter.Days) * 24 * time.Hour)
	}

	var out []dto.HistoryEntry
	for _, h := range r.rows {
		if filter.ProductID != nil && h.ProductID != *filter.ProductID {
			continue
		}
		if filter.CompetitorID != nil && h.CompetitorID != *filter.CompetitorID {
			continue
		}
		if filter.Days != nil && h.ChangedAt.Before(cutoff) {
			continue
		}
		out = append(out, dto.HistoryEntry{
			ID:             h.ID,
			ProductID:      h.ProductID,
			ProductName:    r.productName(h.ProductID),
			CompetitorID:   h.CompetitorID,
			CompetitorName: r.competitorName(h.CompetitorID),
			PreviousValue:  h.PreviousValue,
			NewValue:       h.NewValue,
			ChangedBy:      h.ChangedBy,
			ChangeType:     h.ChangeType,
			ChangedAt:      h.ChangedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ChangedAt.After(out[j].ChangedAt) })
	return out, nil
}

func (r *stubHistoryRepo) productName(id uint) string {
	if r.products == nil {
		return ""
	}
	if p, ok := r.products.products[id]; ok {
		return p.Name
	}
	return ""
}

func (r *stubHistoryRepo) competitorName(id uint) string {
	if r.competitors == nil {
		return ""
	}
	for _, c := range fixedCompetitors {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

var _ repository.PriceHistoryRepository = (*stubHistoryRepo)(nil)

// stubUserRepo holds users keyed by email.
type stubUserRepo struct {
	users      map[string]*model.User
	seq        uint
	lastSigned map[uint]time.Time
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User), lastSigned: make(map[uint]time.Time)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.seq++
	u.ID = r.seq
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) TouchLastSignedIn(_ context.Context, id uint) error {
	r.lastSigned[id] = time.Now()
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubClientRepo is an in-memory ClientRepository; createCalls counts how
// many inserts were attempted (for the get-or-create race test).
type stubClientRepo struct {
	clients     map[uint]*model.Client
	seq         uint
	createCalls int
	// missOnce makes the next FindByCode miss, simulating a lookup that ran
	// before a concurrent insert committed.
	missOnce bool
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uint]*model.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	r.createCalls++
	for _, existing := range r.clients {
		if existing.Code == c.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	c.ID = r.seq
	c.CreatedAt = time.Now()
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uint) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClientRepo) FindByCode(_ context.Context, code string) (*model.Client, error) {
	if r.missOnce {
		r.missOnce = false
		return nil, gorm.ErrRecordNotFound
	}
	for _, c := range r.clients {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]model.Client, error) {
	out := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ repository.ClientRepository = (*stubClientRepo)(nil)

type stubSKURepo struct {
	skus map[uint]*model.SKU
	seq  uint
}

func newStubSKURepo() *stubSKURepo { return &stubSKURepo{skus: make(map[uint]*model.SKU)} }

func (r *stubSKURepo) Create(_ context.Context, s *model.SKU) error {
	r.seq++
	s.ID = r.seq
	r.skus[s.ID] = s
	return nil
}

func (r *stubSKURepo) FindByID(_ context.Context, id uint) (*model.SKU, error) {
	s, ok := r.skus[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSKURepo) ListByClient(_ context.Context, clientID uint) ([]model.SKU, error) {
	var out []model.SKU
	for _, s := range r.skus {
		if s.ClientID == clientID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *stubSKURepo) Delete(_ context.Context, id uint) error {
	delete(r.skus, id)
	return nil
}

var _ repository.SKURepository = (*stubSKURepo)(nil)

type stubEvidenceRepo struct {
	rows map[uint]*model.Evidence
	seq  uint
}

func newStubEvidenceRepo() *stubEvidenceRepo {
	return &stubEvidenceRepo{rows: make(map[uint]*model.Evidence)}
}

func (r *stubEvidenceRepo) Create(_ context.Context, e *model.Evidence) error {
	r.seq++
	e.ID = r.seq
	if e.UploadedAt.IsZero() {
		e.UploadedAt = time.Now()
	}
	r.rows[e.ID] = e
	return nil
}

func (r *stubEvidenceRepo) FindByID(_ context.Context, id uint) (*model.Evidence, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEvidenceRepo) ListByClient(_ context.Context, clientID uint) ([]model.Evidence, error) {
	var out []model.Evidence
	for _, e := range r.rows {
		if e.ClientID == clientID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (r *stubEvidenceRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

var _ repository.EvidenceRepository = (*stubEvidenceRepo)(nil)

// stubStorage captures uploaded objects keyed by the returned URL.
type stubStorage struct {
	objects map[string][]byte
	removed []string
	fail    bool
}

func newStubStorage() *stubStorage { return &stubStorage{objects: make(map[string][]byte)} }

func (s *stubStorage) Upload(_ context.Context, key string, body io.Reader, _ string, _ int64) (string, error) {
	if s.fail {
		return "", errors.New("bucket unreachable")
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return "", err
	}
	url := "https://files.test/" + key
	s.objects[url] = buf.Bytes()
	return url, nil
}

func (s *stubStorage) Remove(_ context.Context, fileURL string) error {
	if s.fail {
		return errors.New("bucket unreachable")
	}
	delete(s.objects, fileURL)
	s.removed = append(s.removed, fileURL)
	return nil
}

var _ service.EvidenceStorage = (*stubStorage)(nil)

// ── Service factories ─────────────────────────────────────────────────────────

func buildPriceSvc() (service.PriceService, *stubPriceRepo, *stubHistoryRepo, *stubProductRepo) {
	productRepo := newStubProductRepo()
	competitorRepo := &stubCompetitorRepo{}
	priceRepo := newStubPriceRepo()
	historyRepo := &stubHistoryRepo{products: productRepo, competitors: competitorRepo}

	svc := service.NewPriceService(priceRepo, historyRepo, productRepo, competitorRepo)
	return svc, priceRepo, historyRepo, productRepo
}

func buildComparisonSvc(
	productRepo *stubProductRepo,
	priceRepo *stubPriceRepo,
	historyRepo *stubHistoryRepo,
) service.ComparisonService {
	return service.NewComparisonService(productRepo, &stubCompetitorRepo{}, priceRepo, historyRepo)
}

func seedProduct(repo *stubProductRepo, name string) *model.Product {
	p := &model.Product{Name: name, CreatedBy: 1}
	_ = repo.Create(context.Background(), p)
	return p
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
