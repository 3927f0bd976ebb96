package readstore

import (
	"context"
	"time"

	"donbalon/internal/infra"
	"donbalon/internal/infra/sqlc"
	"donbalon/internal/pkg/pgconv"
	"donbalon/internal/usecase/queries"
	"donbalon/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationDetail(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationDetailRow, error)
	ListReservationLines(ctx context.Context, db sqlc.DBTX, reservationID int64) ([]sqlc.ListReservationLinesRow, error)
	GetPaymentByReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.GetPaymentByReservationRow, error)
	ListReservationsByClientFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByClientFirstPageParams) ([]sqlc.ListReservationsByClientRow, error)
	ListReservationsByClientKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByClientKeysetParams) ([]sqlc.ListReservationsByClientRow, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservation, error)
	ListOpenReservationsEndedBefore(ctx context.Context, db sqlc.DBTX, before pgtype.Date) ([]int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation total", err)
	}
	view := &queries.ReservationView{
		ID:         row.ID,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		Total:      total.StringFixed(2),
		ReservedOn: pgconv.DateFromPgtype(row.ReservedOn),
		Status:     row.Status,
	}

	lines, err := r.queries.ListReservationLines(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation lines", err)
	}
	view.Lines = make([]queries.ReservationLineView, len(lines))
	for i, l := range lines {
		price, err := pgconv.DecimalFromNumeric(l.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert line price", err)
		}
		view.Lines[i] = queries.ReservationLineView{
			ID:         l.ID,
			SlotID:     l.SlotID,
			CourtID:    l.CourtID,
			CourtName:  l.CourtName,
			ScheduleID: l.ScheduleID,
			StartsAt:   pgconv.ClockFromPgtype(l.StartsAt),
			EndsAt:     pgconv.ClockFromPgtype(l.EndsAt),
			Date:       pgconv.DateFromPgtype(l.SlotDate),
			SlotStatus: l.SlotStatus,
			Price:      price.StringFixed(2),
		}
	}

	payment, err := r.queries.GetPaymentByReservation(ctx, r.db, id)
	switch {
	case err == nil:
		amount, cerr := pgconv.DecimalFromNumeric(payment.Amount)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to convert payment amount", cerr)
		}
		view.Payment = &queries.PaymentView{
			ID:              payment.ID,
			PaymentMethodID: payment.PaymentMethodID,
			PaymentMethod:   payment.PaymentMethod,
			PaidOn:          pgconv.TimeFromPgtype(payment.PaidOn),
			Amount:          amount.StringFixed(2),
		}
	case pgconv.IsNoRows(err):
	default:
		return nil, infra.WrapRepoErr("failed to find reservation payment", err)
	}

	return view, nil
}

func (r *ReservationReadStore) FindByClientFirstPage(ctx context.Context, clientID int64, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByClientFirstPage(ctx, r.db, sqlc.ListReservationsByClientFirstPageParams{
		ClientID: clientID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}
	return toReservationListItems(rows)
}

func (r *ReservationReadStore) FindByClientKeyset(ctx context.Context, clientID int64, lastReservedOn time.Time, lastID int64, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByClientKeyset(ctx, r.db, sqlc.ListReservationsByClientKeysetParams{
		ClientID:       clientID,
		LastReservedOn: pgconv.DateToPgtype(lastReservedOn),
		LastID:         lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations with keyset", err)
	}
	return toReservationListItems(rows)
}

// FindForUpdate must run inside a transaction for the row lock to mean anything.
func (r *ReservationReadStore) FindForUpdate(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation total", err)
	}
	return &shared.ReservationSnapshot{
		ID:         row.ID,
		ClientID:   row.ClientID,
		Total:      total,
		ReservedOn: pgconv.DateFromPgtype(row.ReservedOn),
		Status:     row.Status,
	}, nil
}

func (r *ReservationReadStore) FindOpenEndedBefore(ctx context.Context, date time.Time) ([]int64, error) {
	ids, err := r.queries.ListOpenReservationsEndedBefore(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list elapsed reservations", err)
	}
	return ids, nil
}

func toReservationListItems(rows []sqlc.ListReservationsByClientRow) ([]*queries.ReservationListItem, error) {
	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		total, err := pgconv.DecimalFromNumeric(row.Total)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation total", err)
		}
		result[i] = &queries.ReservationListItem{
			ID:         row.ID,
			Total:      total.StringFixed(2),
			ReservedOn: pgconv.DateFromPgtype(row.ReservedOn),
			Status:     row.Status,
			LineCount:  row.LineCount,
		}
	}
	return result, nil
}
