package services

import (
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RatingSummary is what a product stores about its reviews.
type RatingSummary struct {
	Average float64
	Count   int
}

// RatingCalculator turns the ratings of a product's visible reviews into its
// average (one decimal, half away from zero) and count.
//
// Example:
//
//	calc := NewRatingCalculator()
//	summary, _ := calc.Summarize([]int{5, 4, 4})
//	// summary.Average == 4.3, summary.Count == 3
type RatingCalculator struct{}

func NewRatingCalculator() RatingCalculator {
	return RatingCalculator{}
}

// Summarize returns 0/0 for no ratings and an out-of-range error if any
// rating falls outside 1..5.
func (RatingCalculator) Summarize(ratings []int) (RatingSummary, error) {
	if len(ratings) == 0 {
		return RatingSummary{}, nil
	}

	var sum int64
	for _, r := range ratings {
		if r < review.MinRating || r > review.MaxRating {
			return RatingSummary{}, errs.NewValueIsOutOfRangeError("rating", r, review.MinRating, review.MaxRating)
		}
		sum += int64(r)
	}

	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(ratings)))).Round(1)
	return RatingSummary{Average: avg.InexactFloat64(), Count: len(ratings)}, nil
}
