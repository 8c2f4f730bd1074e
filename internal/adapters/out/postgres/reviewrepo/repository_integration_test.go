package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/reviewrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ReviewRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *reviewrepo.GormReviewRepository
	now        time.Time
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres.Migrate)
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = reviewrepo.NewGormReviewRepository(suite.database.DB)
	suite.now = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresReview() {
	ctx := context.Background()
	r := suite.newReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 4)

	suite.Require().NoError(suite.repository.Add(ctx, r))

	restored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(r.ID(), restored.ID())
	suite.Equal(r.ProductID(), restored.ProductID())
	suite.Equal(r.UserID(), restored.UserID())
	suite.Equal(r.OrderID(), restored.OrderID())
	suite.Equal(4, restored.Rating())
	suite.Equal("solid kit", restored.Comment())
	suite.False(restored.Hidden())
	suite.True(suite.now.Equal(restored.CreatedAt()))
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_SecondReviewForSameOrder_ReturnsAlreadyExists() {
	ctx := context.Background()
	userID, productID, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newReview(productID, userID, orderID, 5)))

	err := suite.repository.Add(ctx, suite.newReview(productID, userID, orderID, 3))

	var existsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestUpdate_PersistsEditAndVisibility() {
	ctx := context.Background()
	r := suite.newReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(r.Edit(5, "grew on me", suite.now.Add(time.Hour)))
	r.SetHidden(true, suite.now.Add(2*time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	restored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(5, restored.Rating())
	suite.Equal("grew on me", restored.Comment())
	suite.True(restored.Hidden())
	suite.True(suite.now.Add(2 * time.Hour).Equal(restored.UpdatedAt()))
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestUpdate_PersistsAndClearsReply() {
	ctx := context.Background()
	staff := kernel.NewUUID()
	r := suite.newReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 4)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	reply, err := review.NewReply(staff, "Thanks for the photos!", suite.now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(r.SetReply(reply))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	restored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	got, ok := restored.Reply()
	suite.Require().True(ok)
	suite.Equal("Thanks for the photos!", got.Content())
	suite.True(got.StaffID().IsEqual(staff))
	suite.True(suite.now.Add(time.Hour).Equal(got.RepliedAt()))

	restored.RemoveReply()
	suite.Require().NoError(suite.repository.Update(ctx, restored))

	cleared, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	_, ok = cleared.Reply()
	suite.False(ok)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestUpdate_NonExistentReview_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.newReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3))

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestDelete_RemovesReview() {
	ctx := context.Background()
	r := suite.newReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(suite.repository.Delete(ctx, r.ID()))

	_, err := suite.repository.Get(ctx, r.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Require().ErrorAs(suite.repository.Delete(ctx, r.ID()), &notFoundErr)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestExists_MatchesUserProductAndOrder() {
	ctx := context.Background()
	userID, productID, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newReview(productID, userID, orderID, 4)))

	exists, err := suite.repository.Exists(ctx, userID, productID, orderID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, userID, productID, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestGetVisibleRatings_SkipsHiddenAndOtherProducts() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	for _, rating := range []int{5, 4} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newReview(productID, kernel.NewUUID(), kernel.NewUUID(), rating)))
	}
	hidden := suite.newReview(productID, kernel.NewUUID(), kernel.NewUUID(), 1)
	hidden.SetHidden(true, suite.now)
	suite.Require().NoError(suite.repository.Add(ctx, hidden))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2)))

	ratings, err := suite.repository.GetVisibleRatings(ctx, productID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]int{5, 4}, ratings)

	ratings, err = suite.repository.GetVisibleRatings(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(ratings)
}

func (suite *ReviewRepositoryIntegrationTestSuite) newReview(productID, userID, orderID kernel.UUID, rating int) *review.Review {
	r, err := review.NewReview(kernel.NewUUID(), productID, userID, orderID, rating, "solid kit", suite.now)
	suite.Require().NoError(err)
	return r
}

func TestReviewRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryIntegrationTestSuite))
}
