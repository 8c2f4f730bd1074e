package productrepo_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres.Migrate)
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = productrepo.NewGormProductRepository(suite.database.DB)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_ExistingProduct_ReturnsProduct() {
	p := suite.seed("RX-78-2 Gundam MG", "49.90")

	retrieved, err := suite.repository.Get(context.Background(), p.ID())
	suite.Require().NoError(err)

	suite.Equal(p.ID(), retrieved.ID())
	suite.Equal("RX-78-2 Gundam MG", retrieved.Name())
	suite.True(decimal.RequireFromString("49.90").Equal(retrieved.Price()))
	suite.Zero(retrieved.RatingCount())
	suite.Zero(retrieved.Sold())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsRatingAndSales() {
	ctx := context.Background()
	p := suite.seed("Zaku II HG", "15.00")

	suite.Require().NoError(p.UpdateRating(4.5, 2))
	suite.Require().NoError(p.RecordSale(3))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	retrieved, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.InDelta(4.5, retrieved.AverageRating(), 0.0001)
	suite.Equal(2, retrieved.RatingCount())
	suite.Equal(3, retrieved.Sold())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsNotFoundError() {
	p, err := product.NewProduct(kernel.NewUUID(), "Ghost kit", decimal.NewFromInt(1))
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), p)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) seed(name, price string) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), name, decimal.RequireFromString(price))
	suite.Require().NoError(err)

	dto := productrepo.FromDomain(p)
	suite.Require().NoError(suite.database.DB.Create(&dto).Error)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
