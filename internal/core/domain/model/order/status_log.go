package order

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
)

// StatusLogEntry is one immutable record of the order's audit trail.
type StatusLogEntry struct {
	status    Status
	changedAt time.Time
	changedBy Actor
}

// NewStatusLogEntry validates and builds a log entry. It is used when restoring
// persisted orders; live transitions append entries through the Order methods.
func NewStatusLogEntry(status Status, changedAt time.Time, changedBy Actor) (StatusLogEntry, error) {
	var timeErr error
	if changedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("changedAt")
	}
	if err := errors.Join(status.Validate(), changedBy.Validate(), timeErr); err != nil {
		return StatusLogEntry{}, err
	}
	return StatusLogEntry{status: status, changedAt: changedAt, changedBy: changedBy}, nil
}

func (e StatusLogEntry) Status() Status {
	return e.status
}

func (e StatusLogEntry) ChangedAt() time.Time {
	return e.changedAt
}

// ChangedBy returns the actor; IsSystem is true for entries written by the sweep.
func (e StatusLogEntry) ChangedBy() Actor {
	return e.changedBy
}
