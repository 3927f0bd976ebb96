package readstore

import (
	"context"

	"donbalon/internal/infra"
	"donbalon/internal/infra/sqlc"
	"donbalon/internal/pkg/pgconv"
	"donbalon/internal/usecase/shared"
)

type ReferenceQueries interface {
	GetPaymentMethodByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.PaymentMethod, error)
	GetCourtByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Court, error)
	GetCourtTypeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.CourtType, error)
}

// ReferenceReadStore resolves the reference rows a booking is priced and validated against.
type ReferenceReadStore struct {
	queries ReferenceQueries
	db      sqlc.DBTX
}

func NewReferenceReadStore(queries ReferenceQueries, db sqlc.DBTX) *ReferenceReadStore {
	return &ReferenceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReferenceReadStore) PaymentMethodByID(ctx context.Context, id int64) (*shared.PaymentMethodSnapshot, error) {
	row, err := r.queries.GetPaymentMethodByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment method not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment method by ID", err)
	}
	return &shared.PaymentMethodSnapshot{ID: row.ID, Description: row.Description}, nil
}

func (r *ReferenceReadStore) CourtByID(ctx context.Context, id int64) (*shared.CourtSnapshot, error) {
	row, err := r.queries.GetCourtByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return &shared.CourtSnapshot{ID: row.ID, Name: row.Name, CourtTypeID: row.CourtTypeID}, nil
}

func (r *ReferenceReadStore) CourtTypeByID(ctx context.Context, id int64) (*shared.CourtTypeSnapshot, error) {
	row, err := r.queries.GetCourtTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court type by ID", err)
	}

	rate, err := pgconv.DecimalFromNumeric(row.HourlyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert hourly rate", err)
	}
	return &shared.CourtTypeSnapshot{ID: row.ID, Name: row.Name, HourlyRate: rate}, nil
}
