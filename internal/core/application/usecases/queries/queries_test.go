package queries_test

import (
	"math"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetMyOrdersQuery{}.Validate(), queries.ErrGetMyOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListAllOrdersQuery{}.Validate(), queries.ErrListAllOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetProductReviewsQuery{}.Validate(), queries.ErrGetProductReviewsQueryIsNotConstructed)
}

func TestNewGetOrderQuery_RequiresIDs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID(), false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	q, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID(), true)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
}

func TestNewGetProductReviewsQuery_ViewerIsOptional(t *testing.T) {
	q, err := queries.NewGetProductReviewsQuery(kernel.NewUUID(), nil)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	invalid := kernel.UUID{}
	_, err = queries.NewGetProductReviewsQuery(kernel.NewUUID(), &invalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListOrdersQuery_Defaults(t *testing.T) {
	q, err := queries.NewListOrdersQuery(queries.ListOrdersParams{})

	require.NoError(t, err)
	assert.Equal(t, queries.DefaultPage, q.Page())
	assert.Equal(t, queries.DefaultLimit, q.Limit())
}

func TestNewListOrdersQuery_InvalidParams(t *testing.T) {
	day := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	dayBefore := day.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		params queries.ListOrdersParams
		target error
	}{
		{"negative page", queries.ListOrdersParams{Page: -1}, errs.ErrValueIsOutOfRange},
		{"page above max", queries.ListOrdersParams{Page: queries.MaxPage + 1}, errs.ErrValueIsOutOfRange},
		{"page that would overflow the offset", queries.ListOrdersParams{Page: math.MaxInt, Limit: queries.MaxLimit}, errs.ErrValueIsOutOfRange},
		{"limit above max", queries.ListOrdersParams{Limit: queries.MaxLimit + 1}, errs.ErrValueIsOutOfRange},
		{"unknown status", queries.ListOrdersParams{Status: "Lost"}, errs.ErrValueIsInvalid},
		{"unknown payment method", queries.ListOrdersParams{PaymentMethod: "crypto"}, errs.ErrValueIsInvalid},
		{"from after to", queries.ListOrdersParams{From: &day, To: &dayBefore}, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewListOrdersQuery(tt.params)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestNewListOrdersQuery_LastAllowedPage(t *testing.T) {
	q, err := queries.NewListOrdersQuery(queries.ListOrdersParams{Page: queries.MaxPage, Limit: queries.MaxLimit})

	require.NoError(t, err)
	assert.Equal(t, queries.MaxPage, q.Page())
}

func TestNewListOrdersQuery_SameDayRangeIsValid(t *testing.T) {
	morning := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)

	_, err := queries.NewListOrdersQuery(queries.ListOrdersParams{From: &evening, To: &morning})

	require.NoError(t, err)
}
