package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrSweepStaleShipmentsCommandIsNotConstructed = errors.New(
	"SweepStaleShipmentsCommand must be created via NewSweepStaleShipmentsCommand constructor",
)

// Sweep triggers, used for logging and metrics.
const (
	SweepTriggerRead = "read"
	SweepTriggerCron = "cron"
)

// SweepStaleShipmentsCommand delivers every order that has been Shipping for
// longer than the stale threshold, measured at now.
type SweepStaleShipmentsCommand struct { //nolint:recvcheck //using for validation
	now     time.Time
	trigger string

	guard guard.ConstructorGuard
}

func NewSweepStaleShipmentsCommand(now time.Time, trigger string) (SweepStaleShipmentsCommand, error) {
	if now.IsZero() {
		return SweepStaleShipmentsCommand{}, errs.NewValueIsRequiredError("now")
	}
	if trigger == "" {
		return SweepStaleShipmentsCommand{}, errs.NewValueIsRequiredError("trigger")
	}
	return SweepStaleShipmentsCommand{
		now:     now,
		trigger: trigger,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SweepStaleShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleShipmentsCommandIsNotConstructed)
}

func (c SweepStaleShipmentsCommand) Now() time.Time {
	return c.now
}

func (c SweepStaleShipmentsCommand) Trigger() string {
	return c.trigger
}
