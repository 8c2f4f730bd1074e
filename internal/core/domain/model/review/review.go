// Package review holds the product Review aggregate written by buyers after delivery.
package review

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Review is a buyer's rating of one product bought in one order.
// Hidden reviews stay visible to their author but are excluded from the
// product rating. Staff may attach one Reply; it does not touch the rating
// or the review's own timestamps.
type Review struct {
	id        kernel.UUID
	productID kernel.UUID
	userID    kernel.UUID
	orderID   kernel.UUID
	rating    int
	comment   string
	hidden    bool
	reply     *Reply
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// State carries the persisted fields of a review.
type State struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	UserID    kernel.UUID
	OrderID   kernel.UUID
	Rating    int
	Comment   string
	Hidden    bool
	Reply     *Reply
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReview(id, productID, userID, orderID kernel.UUID, rating int, comment string, now time.Time) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		userID.Validate(),
		orderID.Validate(),
		validateRating(rating),
	); err != nil {
		return nil, err
	}
	return &Review{
		id:            id,
		productID:     productID,
		userID:        userID,
		orderID:       orderID,
		rating:        rating,
		comment:       strings.TrimSpace(comment),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

func RestoreReview(s State) (*Review, error) {
	r, err := NewReview(s.ID, s.ProductID, s.UserID, s.OrderID, s.Rating, s.Comment, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.hidden = s.Hidden
	if s.Reply != nil {
		if err = s.Reply.Validate(); err != nil {
			return nil, err
		}
		reply := *s.Reply
		r.reply = &reply
	}
	if !s.UpdatedAt.IsZero() {
		r.updatedAt = s.UpdatedAt
	}
	return r, nil
}

func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID        { return r.id }
func (r *Review) ProductID() kernel.UUID { return r.productID }
func (r *Review) UserID() kernel.UUID    { return r.userID }
func (r *Review) OrderID() kernel.UUID   { return r.orderID }
func (r *Review) Rating() int            { return r.rating }
func (r *Review) Comment() string        { return r.comment }
func (r *Review) Hidden() bool           { return r.hidden }
func (r *Review) CreatedAt() time.Time   { return r.createdAt }
func (r *Review) UpdatedAt() time.Time   { return r.updatedAt }

// Reply returns the staff reply and whether there is one.
func (r *Review) Reply() (Reply, bool) {
	if r.reply == nil {
		return Reply{}, false
	}
	return *r.reply, true
}

// SetReply attaches reply, replacing any earlier one.
func (r *Review) SetReply(reply Reply) error {
	if err := reply.Validate(); err != nil {
		return err
	}
	r.reply = &reply
	return nil
}

// EditReply rewrites the existing reply as staffID.
func (r *Review) EditReply(staffID kernel.UUID, content string, at time.Time) error {
	if r.reply == nil {
		return errs.NewObjectNotFoundError("reply", r.id.String())
	}
	reply, err := NewReply(staffID, content, at)
	if err != nil {
		return err
	}
	r.reply = &reply
	return nil
}

// RemoveReply is a no-op when there is no reply.
func (r *Review) RemoveReply() {
	r.reply = nil
}

func (r *Review) IsAuthoredBy(userID kernel.UUID) bool {
	return r.userID.IsEqual(userID)
}

// Edit replaces rating and comment. The review keeps its visibility.
func (r *Review) Edit(rating int, comment string, at time.Time) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	r.rating = rating
	r.comment = strings.TrimSpace(comment)
	r.updatedAt = at
	return nil
}

func (r *Review) SetHidden(hidden bool, at time.Time) {
	r.hidden = hidden
	r.updatedAt = at
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	return nil
}
