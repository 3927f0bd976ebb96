package repository

import (
	"context"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/infra"
	"donbalon/internal/infra/repository/converter"
	"donbalon/internal/infra/sqlc"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status reservation.Status) error {
	n, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{ID: id, Status: status.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

type LineWriteQueries interface {
	CreateReservationLine(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationLineParams) (int64, error)
}

type LineRepository struct {
	queries LineWriteQueries
}

func NewLineRepository(queries LineWriteQueries) *LineRepository {
	return &LineRepository{queries: queries}
}

func (r *LineRepository) Create(ctx context.Context, tx sqlc.DBTX, line reservation.Line) (int64, error) {
	id, err := r.queries.CreateReservationLine(ctx, tx, converter.LineToCreateParams(line))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation line", err)
	}
	return id, nil
}

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, payment reservation.Payment) (int64, error) {
	id, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(payment))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}
