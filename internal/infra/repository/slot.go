package repository

import (
	"context"

	"donbalon/internal/domain/slot"
	"donbalon/internal/infra"
	"donbalon/internal/infra/repository/converter"
	"donbalon/internal/infra/sqlc"
)

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (int64, error)
	UpdateSlotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStatusParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
}

func NewSlotRepository(queries SlotWriteQueries) *SlotRepository {
	return &SlotRepository{queries: queries}
}

// Create reports KindDuplicateKey when the (court, schedule, date) triple already has a slot.
func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (int64, error) {
	id, err := r.queries.CreateSlot(ctx, tx, converter.SlotToCreateParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create slot", err)
	}
	return id, nil
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status slot.Status) error {
	n, err := r.queries.UpdateSlotStatus(ctx, tx, sqlc.UpdateSlotStatusParams{ID: id, Status: status.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to update slot status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
