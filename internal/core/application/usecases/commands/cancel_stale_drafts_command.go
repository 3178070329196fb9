package commands

import (
	"errors"
	"time"

	"procurement/internal/pkg/guard"
)

var (
	ErrCancelStaleDraftsCommandIsNotConstructed = errors.New(
		"CancelStaleDraftsCommand must be created via NewCancelStaleDraftsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// CancelStaleDraftsCommand represents a housekeeping request to cancel draft
// orders that were never submitted within the retention period.
//
// Example:
//
//	cmd, err := NewCancelStaleDraftsCommand(30 * 24 * time.Hour)
//	if err != nil {
//	    return fmt.Errorf("invalid retention: %w", err)
//	}
//
//	handler := NewCancelStaleDraftsCommandHandler(uowFactory)
//	cancelled, err := handler.Handle(ctx, cmd)
type CancelStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleDraftsCommand creates a command to cancel stale drafts.
// The retention is how long a draft may stay untouched before it is
// considered abandoned; it must be positive.
func NewCancelStaleDraftsCommand(retention time.Duration) (CancelStaleDraftsCommand, error) {
	staleCommand := CancelStaleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setRetention(retention); err != nil {
		return CancelStaleDraftsCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleDraftsCommandIsNotConstructed if validation fails.
func (c CancelStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleDraftsCommandIsNotConstructed)
}

// Retention returns how long a draft may remain before being cancelled.
func (c CancelStaleDraftsCommand) Retention() time.Duration {
	return c.retention
}

func (c *CancelStaleDraftsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}
