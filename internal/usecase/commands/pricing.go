package commands

import (
	"context"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/infra"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"
)

// PricingResolver prices a line at the hourly rate of the court's type.
// Schedule blocks are one hour long, so no duration scaling applies.
type PricingResolver struct {
	reads shared.CommandReads
	rates map[int64]reservation.Money
}

func NewPricingResolver(reads shared.CommandReads) *PricingResolver {
	return &PricingResolver{reads: reads, rates: make(map[int64]reservation.Money)}
}

func (p *PricingResolver) LinePrice(ctx context.Context, courtID int64) (reservation.Money, error) {
	if rate, ok := p.rates[courtID]; ok {
		return rate, nil
	}

	court, err := p.reads.CourtByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.Money{}, notFound(errs.Newf("court %d", courtID), ErrCourtNotFound)
		}
		return reservation.Money{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	courtType, err := p.reads.CourtTypeByID(ctx, court.CourtTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.Money{}, notFound(errs.Newf("court type %d of court %d", court.CourtTypeID, courtID), ErrCourtTypeNotFound)
		}
		return reservation.Money{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rate, err := reservation.NewMoney(courtType.HourlyRate)
	if err != nil {
		return reservation.Money{}, errs.Wrapf(err, "hourly rate of court type %d", courtType.ID)
	}
	p.rates[courtID] = rate
	return rate, nil
}
