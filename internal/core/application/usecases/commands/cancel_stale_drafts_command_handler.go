package commands

import (
	"context"
	"time"
)

// CancelStaleDraftsCommandHandler cancels draft orders that were placed
// before the retention cutoff and never submitted. It is driven by the
// scheduled housekeeping job rather than by user requests.
//
// Example:
//
//	handler := NewCancelStaleDraftsCommandHandler(uowFactory)
//	cmd, _ := NewCancelStaleDraftsCommand(30 * 24 * time.Hour)
//
//	cancelled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("housekeeping failed: %v", err)
//	}
//	log.Printf("cancelled %d stale drafts", cancelled)
type CancelStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleDraftsCommandHandler creates a handler for draft housekeeping.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleDraftsCommandHandler(uowFactory OrderUoWFactory) CancelStaleDraftsCommandHandler {
	return CancelStaleDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the housekeeping command.
// Cancels every draft placed before now minus the retention, all within a
// single transaction, and returns the number of cancelled orders.
func (h *CancelStaleDraftsCommandHandler) Handle(
	ctx context.Context, cmd CancelStaleDraftsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.PurchaseOrderRepository()
	drafts, err := orderRepo.GetDraftsCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, draft := range drafts {
		if err = draft.Cancel(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, draft); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(drafts), nil
}
