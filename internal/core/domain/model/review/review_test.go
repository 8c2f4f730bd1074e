package review_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	t.Run("should create a visible review", func(t *testing.T) {
		author := kernel.NewUUID()
		r, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), author, kernel.NewUUID(), 4, "  nice kit ", now)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 4, r.Rating())
		assert.Equal(t, "nice kit", r.Comment())
		assert.False(t, r.Hidden())
		assert.True(t, r.IsAuthoredBy(author))
		assert.False(t, r.IsAuthoredBy(kernel.NewUUID()))
	})

	t.Run("should reject ratings outside 1..5", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "", now)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should join identifier errors", func(t *testing.T) {
		_, err := review.NewReview(kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), 3, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestReview_EditAndHide(t *testing.T) {
	now := time.Now()
	r, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, "meh", now)
	require.NoError(t, err)

	require.ErrorIs(t, r.Edit(9, "x", now), errs.ErrValueIsOutOfRange)
	assert.Equal(t, 2, r.Rating())

	later := now.Add(time.Hour)
	require.NoError(t, r.Edit(5, "grew on me", later))
	r.SetHidden(true, later)

	assert.Equal(t, 5, r.Rating())
	assert.Equal(t, "grew on me", r.Comment())
	assert.True(t, r.Hidden())
	assert.Equal(t, later, r.UpdatedAt())
}

func TestRestoreReview(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r, err := review.RestoreReview(review.State{
		ID:        kernel.NewUUID(),
		ProductID: kernel.NewUUID(),
		UserID:    kernel.NewUUID(),
		OrderID:   kernel.NewUUID(),
		Rating:    1,
		Hidden:    true,
		CreatedAt: created,
	})

	require.NoError(t, err)
	assert.True(t, r.Hidden())
	assert.Equal(t, created, r.UpdatedAt())
}

func TestReview_Reply(t *testing.T) {
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	staff := kernel.NewUUID()

	newReview := func(t *testing.T) *review.Review {
		t.Helper()
		r, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3, "panel lines faded", now)
		require.NoError(t, err)
		return r
	}

	t.Run("should attach and overwrite a reply", func(t *testing.T) {
		r := newReview(t)
		_, ok := r.Reply()
		require.False(t, ok)

		first, err := review.NewReply(staff, " Thanks, we will check the batch. ", now)
		require.NoError(t, err)
		require.NoError(t, r.SetReply(first))

		second, err := review.NewReply(staff, "Replacement shipped.", now.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, r.SetReply(second))

		reply, ok := r.Reply()
		require.True(t, ok)
		assert.Equal(t, "Replacement shipped.", reply.Content())
		assert.True(t, reply.StaffID().IsEqual(staff))
		assert.Equal(t, now.Add(time.Hour), reply.RepliedAt())
		assert.Equal(t, now, r.UpdatedAt(), "a reply leaves the review timestamps alone")
	})

	t.Run("should reject blank content and zero-value replies", func(t *testing.T) {
		_, err := review.NewReply(staff, "   ", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		r := newReview(t)
		require.ErrorIs(t, r.SetReply(review.Reply{}), review.ErrReplyIsNotConstructed)
	})

	t.Run("should edit only an existing reply", func(t *testing.T) {
		r := newReview(t)
		require.ErrorIs(t, r.EditReply(staff, "edited", now), errs.ErrObjectNotFound)

		reply, err := review.NewReply(staff, "original", now)
		require.NoError(t, err)
		require.NoError(t, r.SetReply(reply))

		editor := kernel.NewUUID()
		require.NoError(t, r.EditReply(editor, "edited", now.Add(time.Minute)))
		got, _ := r.Reply()
		assert.Equal(t, "edited", got.Content())
		assert.True(t, got.StaffID().IsEqual(editor))

		require.ErrorIs(t, r.EditReply(editor, "", now), errs.ErrValueIsRequired)
		got, _ = r.Reply()
		assert.Equal(t, "edited", got.Content())
	})

	t.Run("should remove a reply and tolerate removing twice", func(t *testing.T) {
		r := newReview(t)
		reply, err := review.NewReply(staff, "noted", now)
		require.NoError(t, err)
		require.NoError(t, r.SetReply(reply))

		r.RemoveReply()
		r.RemoveReply()

		_, ok := r.Reply()
		assert.False(t, ok)
	})

	t.Run("should restore a persisted reply", func(t *testing.T) {
		reply, err := review.NewReply(staff, "restored", now)
		require.NoError(t, err)

		r, err := review.RestoreReview(review.State{
			ID:        kernel.NewUUID(),
			ProductID: kernel.NewUUID(),
			UserID:    kernel.NewUUID(),
			OrderID:   kernel.NewUUID(),
			Rating:    5,
			Reply:     &reply,
			CreatedAt: now,
		})

		require.NoError(t, err)
		got, ok := r.Reply()
		require.True(t, ok)
		assert.Equal(t, "restored", got.Content())
	})
}
