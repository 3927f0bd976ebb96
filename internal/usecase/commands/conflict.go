package commands

import (
	"context"

	"donbalon/internal/domain/slot"
	"donbalon/internal/infra"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"
)

// ConflictChecker treats any stored slot for the triple as taken, whatever its state.
// A released slot therefore still blocks a new booking of the same triple.
type ConflictChecker struct {
	reads shared.CommandReads
}

func NewConflictChecker(reads shared.CommandReads) *ConflictChecker {
	return &ConflictChecker{reads: reads}
}

func (c *ConflictChecker) Exists(ctx context.Context, key slot.Key) (bool, error) {
	_, err := c.reads.SlotByKey(ctx, key)
	if err == nil {
		return true, nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return false, nil
	}
	return false, errs.Mark(err, ErrDatabaseOperationFailed)
}

// Check returns a *SlotConflictError when the triple is taken.
func (c *ConflictChecker) Check(ctx context.Context, key slot.Key) error {
	exists, err := c.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return &SlotConflictError{Key: key}
	}
	return nil
}
