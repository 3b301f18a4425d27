package interfaces

import (
	"context"

	"medpipeline/internal/domain/entities"
)

// IOpportunityStore abstracts the remote sheet holding pipeline records.
//
// Mutations return the affected-row count reported by the store; callers
// treat zero as a rejected write and must not touch local state.

type IOpportunityStore interface {
	FetchAll(ctx context.Context) ([]entities.Opportunity, error)
	Create(ctx context.Context, o entities.Opportunity) (int, error)
	Update(ctx context.Context, id int, o entities.Opportunity) (int, error)
	Delete(ctx context.Context, id int) (int, error)
}
