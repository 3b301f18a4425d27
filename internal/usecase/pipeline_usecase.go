package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"medpipeline/internal/domain/entities"
	"medpipeline/internal/usecase/interfaces"
)

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrInvalidRecordID       = errors.New("invalid record id")
	ErrInvalidStage          = errors.New("invalid pipeline stage")
	ErrInvalidPotentialValue = errors.New("potential value must be non-negative")
	ErrInvalidPercentage     = errors.New("percentage must be between 0 and 100")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidMonth          = errors.New("invalid year-month")
	ErrStoreRejected         = errors.New("store rejected the mutation")
	ErrStoreUnavailable      = errors.New("record store unavailable")
)

// Filter narrows snapshot reads. Empty fields match everything; Query is a
// case-insensitive substring search across the descriptive text fields.
type Filter struct {
	Stage       string
	Hospital    string
	Product     string
	Distributor string
	SalesPerson string
	Query       string
}

// IPipelineUseCase owns the in-memory snapshot of pipeline records and keeps
// it synchronized with the remote sheet.
//
// Side-effect discipline: the snapshot changes only after the store confirms
// a mutation (affected-count > 0). The single exception is Refresh, which on
// store failure substitutes a built-in sample set so downstream views never
// operate on an undefined collection.

type IPipelineUseCase interface {
	Refresh(ctx context.Context) error
	List(ctx context.Context, f Filter) []entities.Opportunity
	Get(ctx context.Context, id int) (entities.Opportunity, error)
	Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error)
	Update(ctx context.Context, id int, o entities.Opportunity) (entities.Opportunity, error)
	Delete(ctx context.Context, id int) error
	Snapshot() []entities.Opportunity
}

type PipelineUseCase struct {
	store  interfaces.IOpportunityStore
	logger *zap.Logger

	// writeMu serializes mutations so each create/update/delete completes its
	// remote round-trip before the next begins, mirroring the one-at-a-time
	// mutation model of the dashboard.
	writeMu sync.Mutex

	mu      sync.RWMutex
	records []entities.Opportunity
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(store interfaces.IOpportunityStore, logger *zap.Logger) *PipelineUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PipelineUseCase{store: store, logger: logger}
}

// Refresh replaces the snapshot with the full remote record set. On failure
// the snapshot falls back to the sample set and the error is returned; the
// caller decides how to surface it.
func (u *PipelineUseCase) Refresh(ctx context.Context) error {
	records, err := u.store.FetchAll(ctx)
	if err != nil {
		u.logger.Warn("record store fetch failed, loading sample data", zap.Error(err))
		u.mu.Lock()
		u.records = sampleOpportunities()
		u.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	u.mu.Lock()
	u.records = records
	u.mu.Unlock()
	u.logger.Info("snapshot refreshed", zap.Int("records", len(records)))
	return nil
}

// Snapshot returns a copy of the current record set.
func (u *PipelineUseCase) Snapshot() []entities.Opportunity {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entities.Opportunity, len(u.records))
	copy(out, u.records)
	return out
}

func (u *PipelineUseCase) List(_ context.Context, f Filter) []entities.Opportunity {
	records := u.Snapshot()

	out := records[:0:0]
	for _, r := range records {
		if f.Stage != "" && string(r.PipelineStage) != f.Stage {
			continue
		}
		if f.Hospital != "" && r.HospitalName != f.Hospital {
			continue
		}
		if f.Product != "" && r.ProductName != f.Product {
			continue
		}
		if f.Distributor != "" && r.DistributorName != f.Distributor {
			continue
		}
		if f.SalesPerson != "" && r.SalesPerson != f.SalesPerson {
			continue
		}
		if f.Query != "" && !matchesQuery(r, f.Query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r entities.Opportunity, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{
		r.DrName,
		r.HospitalName,
		r.ProductName,
		r.DistributorName,
		r.SalesPerson,
		string(r.PipelineStage),
		r.Notes,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (u *PipelineUseCase) Get(_ context.Context, id int) (entities.Opportunity, error) {
	if id <= 0 {
		return entities.Opportunity{}, ErrInvalidRecordID
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, r := range u.records {
		if r.ID == id {
			return r, nil
		}
	}
	return entities.Opportunity{}, ErrRecordNotFound
}

func (u *PipelineUseCase) Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error) {
	if err := validateOpportunity(&o); err != nil {
		return entities.Opportunity{}, err
	}

	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	o.ID = u.nextID()
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	o.RecomputeDerived()

	created, err := u.store.Create(ctx, o)
	if err != nil {
		return entities.Opportunity{}, err
	}
	if created == 0 {
		return entities.Opportunity{}, ErrStoreRejected
	}

	u.mu.Lock()
	u.records = append(u.records, o)
	u.mu.Unlock()
	return o, nil
}

func (u *PipelineUseCase) Update(ctx context.Context, id int, o entities.Opportunity) (entities.Opportunity, error) {
	if id <= 0 {
		return entities.Opportunity{}, ErrInvalidRecordID
	}
	if err := validateOpportunity(&o); err != nil {
		return entities.Opportunity{}, err
	}

	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.Opportunity{}, err
	}

	// Full patched record: identity and creation time survive the edit,
	// everything else comes from the input.
	o.ID = existing.ID
	o.CreatedAt = existing.CreatedAt
	o.UpdatedAt = time.Now().UTC()
	o.RecomputeDerived()

	updated, err := u.store.Update(ctx, id, o)
	if err != nil {
		return entities.Opportunity{}, err
	}
	if updated == 0 {
		return entities.Opportunity{}, ErrStoreRejected
	}

	u.mu.Lock()
	for i := range u.records {
		if u.records[i].ID == id {
			u.records[i] = o
			break
		}
	}
	u.mu.Unlock()
	return o, nil
}

func (u *PipelineUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidRecordID
	}

	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	if _, err := u.Get(ctx, id); err != nil {
		return err
	}

	deleted, err := u.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrStoreRejected
	}

	u.mu.Lock()
	for i := range u.records {
		if u.records[i].ID == id {
			u.records = append(u.records[:i], u.records[i+1:]...)
			break
		}
	}
	u.mu.Unlock()
	return nil
}

// nextID assigns the next sequential id: max existing id + 1, or 1 for an
// empty snapshot. Ids are client-generated; the sheet store does not assign
// them.
func (u *PipelineUseCase) nextID() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	max := 0
	for _, r := range u.records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func validateOpportunity(o *entities.Opportunity) error {
	if !o.PipelineStage.Valid() {
		return ErrInvalidStage
	}
	if o.PotentialValue < 0 {
		return ErrInvalidPotentialValue
	}
	for _, p := range []int{o.WinningPercentage, o.BuyingPercentage} {
		if p < 0 || p > 100 {
			return ErrInvalidPercentage
		}
	}

	o.Date = strings.TrimSpace(o.Date)
	if o.Date != "" {
		if _, err := time.Parse("2006-01-02", o.Date); err != nil {
			return ErrInvalidDate
		}
	}

	fm, ok := NormalizeMonth(o.ForecastMonth)
	if !ok {
		return ErrInvalidMonth
	}
	o.ForecastMonth = fm

	o.ClosedMonth = strings.TrimSpace(o.ClosedMonth)
	if o.ClosedMonth != "" {
		cm, ok := NormalizeMonth(o.ClosedMonth)
		if !ok {
			return ErrInvalidMonth
		}
		o.ClosedMonth = cm
	}
	return nil
}
