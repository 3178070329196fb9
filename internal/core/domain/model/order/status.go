package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct procurement workflow.
//
// State transitions:
//
//	Draft ──> Submitted ──> Approved ──> Shipped ──> Completed
//	  │           │            │           │
//	  └───────────┴────────────┴───────────┴──> Cancelled
//
// Completed and Cancelled are terminal states with no outgoing transitions.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when a purchase order is first created.
	// Items may only be added while the order is in this status.
	Draft

	// Submitted indicates the order has been sent for approval.
	Submitted

	// Approved indicates the order has been approved for fulfilment.
	Approved

	// Shipped indicates the supplier has dispatched the goods.
	Shipped

	// Completed indicates the order has been fulfilled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Submitted: "Submitted",
		Approved:  "Approved",
		Shipped:   "Shipped",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Submitted: "Submitted",
		Approved:  "Approved",
		Shipped:   "Shipped",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Submitted, Approved, Shipped, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements
// the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDraft reports whether the status is Draft.
// Only draft orders accept item mutations.
func (s Status) IsDraft() bool {
	return s == Draft
}

// IsTerminal reports whether the status permits no further transitions.
// Completed and Cancelled are the terminal states.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Submit transitions the status to Submitted.
//
// Valid transitions:
//   - Draft -> Submitted
//
// Returns:
//   - (Submitted, nil) on valid transition
//   - (0, error) if the current status is not Draft
func (s Status) Submit() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to submit", s.String()),
		)
	}

	return Submitted, nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Submitted -> Approved
//
// Returns:
//   - (Approved, nil) on valid transition
//   - (0, error) if the current status is not Submitted
func (s Status) Approve() (Status, error) {
	if s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}

	return Approved, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Approved -> Shipped
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, error) if the current status is not Approved
func (s Status) Ship() (Status, error) {
	if s != Approved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Shipped -> Completed
//
// Completed is a terminal state with no further transitions possible.
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the current status is not Shipped
func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft -> Cancelled
//   - Submitted -> Cancelled
//   - Approved -> Cancelled
//   - Shipped -> Cancelled
//
// Terminal states cannot be cancelled: Completed orders are already
// fulfilled, and cancelling a Cancelled order would be a transition
// out of a terminal state.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the current status is terminal or invalid
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
