package commands

import (
	"context"
	"log/slog"
	"time"

	"donbalon/internal/domain/paymentmethod"
	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/slot"
	"donbalon/internal/infra"
	"donbalon/internal/pkg/clock"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingItem struct {
	CourtID    int64
	ScheduleID int64
	Date       time.Time
}

type RegisterBookingRequest struct {
	ClientID        int64
	PaymentMethodID int64
	Items           []BookingItem
	// IdempotencyKey is optional; uuid.Nil disables replay protection.
	IdempotencyKey uuid.UUID
}

type BookedLine struct {
	Slot *slot.Slot
	Line reservation.Line
}

// BookingResult is everything the booking persisted, with storage ids filled in.
type BookingResult struct {
	Reservation   *reservation.Reservation
	Lines         []BookedLine
	Payment       reservation.Payment
	PaymentMethod string
	// ReplayedReservationID is set, and nothing else, when an idempotency key replays an earlier booking.
	ReplayedReservationID int64
}

func (r *BookingResult) Replayed() bool {
	return r.ReplayedReservationID != 0
}

type BookingCommands interface {
	RegisterBooking(ctx context.Context, req RegisterBookingRequest) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	location  *time.Location
}

func NewBookingUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, loc *time.Location) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, publisher: publisher, clock: clk, location: loc}
}

type plannedItem struct {
	key   slot.Key
	price reservation.Money
}

// bookingPlan is the result of the read phase. It is not modified afterwards.
type bookingPlan struct {
	clientID   int64
	method     paymentmethod.PaymentMethod
	initial    reservation.Status
	items      []plannedItem
	total      reservation.Money
	reservedOn time.Time
	paidAt     time.Time
}

func (uc *bookingUseCaseImpl) RegisterBooking(ctx context.Context, req RegisterBookingRequest) (*BookingResult, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	if req.IdempotencyKey == uuid.Nil {
		return uc.register(ctx, req)
	}

	replayID, err := uc.claimKey(ctx, req.IdempotencyKey, requestFingerprint(req))
	if err != nil {
		return nil, err
	}
	if replayID != 0 {
		slog.Info("booking replayed",
			"idempotency_key", req.IdempotencyKey.String(),
			"reservation_id", replayID)
		return &BookingResult{ReplayedReservationID: replayID}, nil
	}

	result, err := uc.register(ctx, req)
	if err != nil {
		uc.releaseKey(ctx, req.IdempotencyKey)
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) register(ctx context.Context, req RegisterBookingRequest) (*BookingResult, error) {
	plan, err := uc.plan(ctx, req)
	if err != nil {
		return nil, err
	}

	var result *BookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, perr := plan.persist(ctx, tx)
		if perr != nil {
			return perr
		}
		if req.IdempotencyKey != uuid.Nil {
			if cerr := tx.IdempotencyKeys().Complete(ctx, tx.DB(), req.IdempotencyKey, r.Reservation.ID()); cerr != nil {
				return errs.Mark(cerr, ErrDatabaseOperationFailed)
			}
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := result.Reservation
	slog.Info("reservation registered",
		"reservation_id", res.ID(),
		"client_id", res.ClientID(),
		"status", res.Status().String(),
		"total", res.Total().String(),
		"lines", len(result.Lines))

	publish(ctx, uc.publisher, shared.ReservationEvent{
		Type:          shared.EventReservationRegistered,
		ReservationID: res.ID(),
		ClientID:      res.ClientID(),
		Status:        res.Status().String(),
		Total:         res.Total().String(),
		OccurredAt:    uc.clock.Now(),
	})

	return result, nil
}

func validateBookingRequest(req RegisterBookingRequest) error {
	if req.ClientID <= 0 {
		return validationError("client id is required")
	}
	if req.PaymentMethodID <= 0 {
		return validationError("payment method id is required")
	}
	for i, item := range req.Items {
		if item.CourtID <= 0 {
			return validationError("items[%d]: court id is required", i)
		}
		if item.ScheduleID <= 0 {
			return validationError("items[%d]: schedule id is required", i)
		}
		if item.Date.IsZero() {
			return validationError("items[%d]: date is required", i)
		}
	}
	return nil
}

// plan runs every lookup the booking needs without writing anything.
func (uc *bookingUseCaseImpl) plan(ctx context.Context, req RegisterBookingRequest) (bookingPlan, error) {
	reads := uc.uow.CommandReads()

	pm, err := reads.PaymentMethodByID(ctx, req.PaymentMethodID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return bookingPlan{}, notFound(errs.Newf("payment method %d", req.PaymentMethodID), ErrPaymentMethodNotFound)
		}
		return bookingPlan{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	method := paymentmethod.New(pm.ID, pm.Description)

	conflicts := NewConflictChecker(reads)
	pricing := NewPricingResolver(reads)

	items := make([]plannedItem, 0, len(req.Items))
	seen := make(map[slot.Key]struct{}, len(req.Items))
	total := reservation.Zero()
	for _, item := range req.Items {
		key, err := slot.NewKey(item.CourtID, item.ScheduleID, item.Date)
		if err != nil {
			return bookingPlan{}, errs.Mark(err, ErrValidation)
		}
		if _, dup := seen[key]; dup {
			return bookingPlan{}, &SlotConflictError{Key: key}
		}
		seen[key] = struct{}{}

		if err := conflicts.Check(ctx, key); err != nil {
			return bookingPlan{}, err
		}

		price, err := pricing.LinePrice(ctx, item.CourtID)
		if err != nil {
			return bookingPlan{}, err
		}

		items = append(items, plannedItem{key: key, price: price})
		total = total.Add(price)
	}

	now := uc.clock.Now()
	return bookingPlan{
		clientID:   req.ClientID,
		method:     method,
		initial:    method.InitialReservationStatus(),
		items:      items,
		total:      total,
		reservedOn: clock.Today(uc.clock, uc.location),
		paidAt:     now,
	}, nil
}

// persist writes reservation, then each slot and line pair, then the payment.
func (p bookingPlan) persist(ctx context.Context, tx shared.Tx) (*BookingResult, error) {
	res, err := reservation.NewReservation(p.clientID, p.total, p.reservedOn, p.initial)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	resID, err := tx.Reservations().Create(ctx, tx.DB(), res)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, notFound(errs.Newf("client %d", p.clientID), ErrClientNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	res = res.WithID(resID)

	booked := make([]BookedLine, 0, len(p.items))
	lines := make([]reservation.Line, 0, len(p.items))
	for _, item := range p.items {
		s := slot.NewBookedSlot(item.key)
		slotID, err := tx.Slots().Create(ctx, tx.DB(), s)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return nil, &SlotConflictError{Key: item.key}
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return nil, notFound(errs.Newf("schedule %d", item.key.ScheduleID), ErrScheduleNotFound)
			default:
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		s = s.WithID(slotID)

		line, err := reservation.NewLine(resID, slotID, item.price)
		if err != nil {
			return nil, err
		}
		lineID, err := tx.Lines().Create(ctx, tx.DB(), line)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		line = line.WithID(lineID)

		booked = append(booked, BookedLine{Slot: s, Line: line})
		lines = append(lines, line)
	}

	if err := reservation.VerifyTotal(res.Total(), lines); err != nil {
		return nil, err
	}

	payment, err := reservation.NewPayment(res, p.method.ID(), p.paidAt)
	if err != nil {
		return nil, err
	}
	paymentID, err := tx.Payments().Create(ctx, tx.DB(), payment)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BookingResult{
		Reservation:   res,
		Lines:         booked,
		Payment:       payment.WithID(paymentID),
		PaymentMethod: p.method.Description(),
	}, nil
}
