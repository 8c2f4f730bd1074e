package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

const (
	orderCodePrefix = "ORD-"

	// MaxCustomerNameLength bounds the buyer name captured at checkout.
	MaxCustomerNameLength = 255
)

// Order is the aggregate root of the storefront order lifecycle.
//
// Order follows these invariants:
//   - owner, customer name, line items, total amount and order code never change after creation
//   - status is always one of the six statuses
//   - the status log is non-empty, ordered by time, and its last entry carries the current status
//   - deliveredAt is set on the first transition into Delivered and never cleared
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	customerName  string
	orderCode     string
	items         []LineItem
	totalAmount   decimal.Decimal
	paymentMethod PaymentMethod

	status      Status
	statusLog   []StatusLogEntry
	deliveredAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// State carries the persisted fields of an order. Repositories fill it and
// pass it to RestoreOrder.
type State struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	CustomerName  string
	OrderCode     string
	Items         []LineItem
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	Status        Status
	StatusLog     []StatusLogEntry
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrderCode returns a fresh human-facing order code such as "ORD-5F3A9C1B".
func NewOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderCodePrefix + strings.ToUpper(raw[:8])
}

// NewOrder places an order in Processing status. The total amount is computed
// from the line items and the status log starts with one Processing entry
// attributed to the buyer. customerName is the buyer's display name at
// checkout; it may be empty and is kept only for staff search.
//
// Returns a joined validation error listing every invalid argument.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	customerName string,
	orderCode string,
	items []LineItem,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		validateCustomerName(customerName),
		validateOrderCode(orderCode),
		validateItems(items),
		paymentMethod.Validate(),
		validateTime("createdAt", now),
	); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return &Order{
		id:            id,
		userID:        userID,
		customerName:  customerName,
		orderCode:     orderCode,
		items:         slices.Clone(items),
		totalAmount:   total,
		paymentMethod: paymentMethod,
		status:        Processing,
		statusLog: []StatusLogEntry{
			{status: Processing, changedAt: now, changedBy: UserActor(userID)},
		},
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persisted state and checks the aggregate
// invariants. The total amount is taken as stored, not recomputed.
func RestoreOrder(s State) (*Order, error) {
	var amountErr error
	if s.TotalAmount.IsNegative() {
		amountErr = errs.NewValueIsInvalidErrorWithCause("totalAmount", fmt.Errorf("%s is negative", s.TotalAmount))
	}
	if err := errors.Join(
		s.ID.Validate(),
		s.UserID.Validate(),
		validateCustomerName(s.CustomerName),
		validateOrderCode(s.OrderCode),
		validateItems(s.Items),
		s.PaymentMethod.Validate(),
		s.Status.Validate(),
		amountErr,
		validateTime("createdAt", s.CreatedAt),
	); err != nil {
		return nil, err
	}
	if err := validateStatusLog(s.Status, s.StatusLog); err != nil {
		return nil, err
	}

	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.CreatedAt
	}

	return &Order{
		id:            s.ID,
		userID:        s.UserID,
		customerName:  s.CustomerName,
		orderCode:     s.OrderCode,
		items:         slices.Clone(s.Items),
		totalAmount:   s.TotalAmount,
		paymentMethod: s.PaymentMethod,
		status:        s.Status,
		statusLog:     slices.Clone(s.StatusLog),
		deliveredAt:   s.DeliveredAt,
		createdAt:     s.CreatedAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) OrderCode() string {
	return o.orderCode
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) Status() Status {
	return o.status
}

// StatusLog returns a copy of the audit trail, oldest first.
func (o *Order) StatusLog() []StatusLogEntry {
	return slices.Clone(o.statusLog)
}

// DeliveredAt returns the first time the order reached Delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// ContainsProduct reports whether any line item references productID.
func (o *Order) ContainsProduct(productID kernel.UUID) bool {
	return slices.ContainsFunc(o.items, func(li LineItem) bool {
		return li.productID.IsEqual(productID)
	})
}

// ShippedAt returns when the order last entered Shipping. Orders with no
// Shipping entry fall back to updatedAt, then createdAt.
func (o *Order) ShippedAt() time.Time {
	for i := len(o.statusLog) - 1; i >= 0; i-- {
		if o.statusLog[i].status == Shipping {
			return o.statusLog[i].changedAt
		}
	}
	if !o.updatedAt.IsZero() {
		return o.updatedAt
	}
	return o.createdAt
}

// ChangeStatus moves the order to target through the transition table.
// Moving into Delivered also stamps deliveredAt if it is not set yet.
//
// Returns:
//   - a ValueIsInvalidError when target or actor is invalid
//   - an InvalidTransitionError when the table has no edge from the current status
func (o *Order) ChangeStatus(target Status, actor Actor, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.apply(next, actor, at)
	return nil
}

// CancelByOwner cancels a Processing order on behalf of its owner.
// Ownership is checked before status.
func (o *Order) CancelByOwner(userID kernel.UUID, at time.Time) error {
	if !o.IsOwnedBy(userID) {
		return errs.NewForbiddenError("cancel an order placed by another user")
	}
	if o.status != Processing {
		return errs.NewInvalidTransitionError(o.status.String(), Canceled.String())
	}
	o.apply(Canceled, UserActor(userID), at)
	return nil
}

// ConfirmDelivered lets the owner confirm that a Shipping order arrived.
func (o *Order) ConfirmDelivered(userID kernel.UUID, at time.Time) error {
	if !o.IsOwnedBy(userID) {
		return errs.NewForbiddenError("confirm delivery of an order placed by another user")
	}
	if o.status != Shipping {
		return errs.NewInvalidTransitionError(o.status.String(), Delivered.String())
	}
	o.apply(Delivered, UserActor(userID), at)
	return nil
}

// MarkDeliveredBySystem transitions a Shipping order to Delivered on behalf
// of the system. Used by the stale-shipment sweep.
func (o *Order) MarkDeliveredBySystem(at time.Time) error {
	if o.status != Shipping {
		return errs.NewInvalidTransitionError(o.status.String(), Delivered.String())
	}
	o.apply(Delivered, SystemActor(), at)
	return nil
}

// apply is the only place that mutates status. Timestamps earlier than the
// last log entry are clamped so the log stays ordered.
func (o *Order) apply(to Status, actor Actor, at time.Time) {
	if last := o.statusLog[len(o.statusLog)-1].changedAt; at.Before(last) {
		at = last
	}
	o.status = to
	o.statusLog = append(o.statusLog, StatusLogEntry{status: to, changedAt: at, changedBy: actor})
	o.updatedAt = at
	if to == Delivered && o.deliveredAt == nil {
		deliveredAt := at
		o.deliveredAt = &deliveredAt
	}
}

func validateOrderCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	return nil
}

func validateCustomerName(name string) error {
	if n := utf8.RuneCountInString(name); n > MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName length", n, 0, MaxCustomerNameLength)
	}
	return nil
}

func validateItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.quantity < 1 || item.productID.Validate() != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d was not built by NewLineItem", i))
		}
	}
	return nil
}

func validateTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateStatusLog(status Status, log []StatusLogEntry) error {
	if len(log) == 0 {
		return errs.NewValueIsRequiredError("statusLog")
	}
	for i := 1; i < len(log); i++ {
		if log[i].changedAt.Before(log[i-1].changedAt) {
			return errs.NewValueIsInvalidErrorWithCause("statusLog", fmt.Errorf("entry %d is older than entry %d", i, i-1))
		}
	}
	if last := log[len(log)-1].status; last != status {
		return errs.NewValueIsInvalidErrorWithCause(
			"statusLog",
			fmt.Errorf("last entry is %s but order status is %s", last, status),
		)
	}
	return nil
}
