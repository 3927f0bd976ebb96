package readstore

import (
	"context"
	"time"

	"donbalon/internal/domain/slot"
	"donbalon/internal/infra"
	"donbalon/internal/infra/sqlc"
	"donbalon/internal/pkg/pgconv"
	"donbalon/internal/usecase/queries"
	"donbalon/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadQueries interface {
	GetSlotByKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotByKeyParams) (sqlc.Slot, error)
	ListSlotsByReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) ([]sqlc.Slot, error)
	ListAvailableSlotsBefore(ctx context.Context, db sqlc.DBTX, before pgtype.Date) ([]sqlc.Slot, error)
	GetCourtWithType(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetCourtWithTypeRow, error)
	ListCourtDaySchedules(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCourtDaySchedulesParams) ([]sqlc.ListCourtDaySchedulesRow, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByKey(ctx context.Context, key slot.Key) (*shared.SlotSnapshot, error) {
	row, err := r.queries.GetSlotByKey(ctx, r.db, sqlc.GetSlotByKeyParams{
		CourtID:    key.CourtID,
		ScheduleID: key.ScheduleID,
		SlotDate:   pgconv.DateToPgtype(key.Date),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by key", err)
	}
	snap := toSlotSnapshot(row)
	return &snap, nil
}

func (r *SlotReadStore) FindByReservation(ctx context.Context, reservationID int64) ([]shared.SlotSnapshot, error) {
	rows, err := r.queries.ListSlotsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots of reservation", err)
	}
	return toSlotSnapshots(rows), nil
}

func (r *SlotReadStore) FindAvailableBefore(ctx context.Context, date time.Time) ([]shared.SlotSnapshot, error) {
	rows, err := r.queries.ListAvailableSlotsBefore(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available past slots", err)
	}
	return toSlotSnapshots(rows), nil
}

func (r *SlotReadStore) FindCourt(ctx context.Context, courtID int64) (*queries.CourtView, error) {
	row, err := r.queries.GetCourtWithType(ctx, r.db, courtID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	rate, err := pgconv.DecimalFromNumeric(row.HourlyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert hourly rate", err)
	}
	return &queries.CourtView{
		ID:         row.ID,
		Name:       row.Name,
		CourtType:  row.CourtType,
		HourlyRate: rate.StringFixed(2),
	}, nil
}

func (r *SlotReadStore) FindDaySchedules(ctx context.Context, courtID int64, date time.Time) ([]queries.ScheduleAvailability, error) {
	rows, err := r.queries.ListCourtDaySchedules(ctx, r.db, sqlc.ListCourtDaySchedulesParams{
		CourtID:  courtID,
		SlotDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list court schedules", err)
	}

	result := make([]queries.ScheduleAvailability, len(rows))
	for i, row := range rows {
		result[i] = queries.ScheduleAvailability{
			ScheduleID: row.ScheduleID,
			StartsAt:   pgconv.ClockFromPgtype(row.StartsAt),
			EndsAt:     pgconv.ClockFromPgtype(row.EndsAt),
			SlotID:     pgconv.Int64PtrFromPgtype(row.SlotID),
			SlotStatus: pgconv.StringPtrFromPgtype(row.SlotStatus),
		}
	}
	return result, nil
}

func toSlotSnapshot(row sqlc.Slot) shared.SlotSnapshot {
	return shared.SlotSnapshot{
		ID:         row.ID,
		CourtID:    row.CourtID,
		ScheduleID: row.ScheduleID,
		Date:       pgconv.DateFromPgtype(row.SlotDate),
		Status:     row.Status,
	}
}

func toSlotSnapshots(rows []sqlc.Slot) []shared.SlotSnapshot {
	result := make([]shared.SlotSnapshot, len(rows))
	for i, row := range rows {
		result[i] = toSlotSnapshot(row)
	}
	return result
}
