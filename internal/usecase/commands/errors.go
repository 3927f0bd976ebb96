package commands

import (
	"fmt"

	"donbalon/internal/domain/slot"
	"donbalon/internal/pkg/errs"
)

var (
	ErrValidation = errs.New("validation failed")
	ErrNotFound   = errs.New("not found")

	ErrPaymentMethodNotFound = errs.New("payment method not found")
	ErrCourtNotFound         = errs.New("court not found")
	ErrCourtTypeNotFound     = errs.New("court type not found")
	ErrClientNotFound        = errs.New("client not found")
	ErrScheduleNotFound      = errs.New("schedule not found")
	ErrReservationNotFound   = errs.New("reservation not found")

	ErrSlotConflict            = errs.New("slot already booked")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SlotConflictError names the triple that is already taken.
type SlotConflictError struct {
	Key slot.Key
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSlotConflict.Error(), e.Key)
}

func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}

// notFound marks err as both the specific and the generic not-found error.
func notFound(err, specific error) error {
	return errs.Mark(errs.Mark(err, specific), ErrNotFound)
}

func validationError(format string, args ...any) error {
	return errs.Mark(errs.Newf(format, args...), ErrValidation)
}
