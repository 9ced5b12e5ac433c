package materialrepo_test

import (
	"context"
	"testing"

	"tailorshop/internal/adapters/out/postgres/materialrepo"
	"tailorshop/internal/adapters/out/postgres/pgtest"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MaterialRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *materialrepo.GormMaterialRepository
	shop       *tailor.Tailor
}

func (suite *MaterialRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *MaterialRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = materialrepo.NewGormMaterialRepository(suite.database.DB, pgtest.NopTracker{})

	shop, err := pgtest.SeedTailor(context.Background(), suite.database.DB, pgtest.ShopOptions{})
	suite.Require().NoError(err)
	suite.shop = shop
}

func (suite *MaterialRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestReserveInsideTransaction() {
	ctx := context.Background()
	wool := suite.newMaterial("Wool", "12.50", "10")
	suite.Require().NoError(suite.repository.Add(ctx, wool))

	err := suite.database.DB.Transaction(func(tx *gorm.DB) error {
		repo := materialrepo.NewGormMaterialRepository(tx, pgtest.NopTracker{})
		locked, err := repo.Get(ctx, wool.ID())
		if err != nil {
			return err
		}
		price, err := locked.Reserve(decimal.RequireFromString("3.5"))
		if err != nil {
			return err
		}
		suite.Equal("43.75", price.String())
		return repo.Update(ctx, locked)
	})
	suite.Require().NoError(err)

	stored, err := suite.repository.Get(ctx, wool.ID())
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("6.5").Equal(stored.QuantityAvailable()))
	suite.Equal("12.50", stored.PricePerYard().String())
	suite.Equal("navy", stored.Details().Color)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestListAvailable_SkipsHiddenAndEmpty() {
	ctx := context.Background()
	linen := suite.newMaterial("Linen", "8.00", "4")
	cotton := suite.newMaterial("Cotton", "5.00", "20")
	hidden := suite.newMaterial("Silk", "30.00", "2")
	hidden.SetAvailability(false)
	empty := suite.newMaterial("Tweed", "18.00", "0")

	for _, m := range []*material.Material{linen, cotton, hidden, empty} {
		suite.Require().NoError(suite.repository.Add(ctx, m))
	}

	available, err := suite.repository.ListAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(available, 2)
	suite.Equal("Cotton", available[0].Details().Name)
	suite.Equal("Linen", available[1].Details().Name)

	all, err := suite.repository.ListByTailor(ctx, suite.shop.ID())
	suite.Require().NoError(err)
	suite.Len(all, 4)

	none, err := suite.repository.ListByTailor(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestGetAndUpdate_Missing() {
	ctx := context.Background()
	ghost := suite.newMaterial("Ghost", "1.00", "1")

	_, err := suite.repository.Get(ctx, ghost.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, ghost)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	wool := suite.newMaterial("Wool", "12.50", "10")
	suite.Require().NoError(suite.repository.Add(ctx, wool))

	suite.Require().NoError(suite.repository.Delete(ctx, wool.ID()))

	_, err := suite.repository.Get(ctx, wool.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, wool.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MaterialRepositoryIntegrationTestSuite) newMaterial(name string, price string, yards string) *material.Material {
	perYard, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)

	m, err := material.NewMaterial(
		kernel.NewUUID(),
		suite.shop.ID(),
		material.Details{Name: name, Type: "fabric", Color: "navy"},
		perYard,
		decimal.RequireFromString(yards),
	)
	suite.Require().NoError(err)
	return m
}

func TestMaterialRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MaterialRepositoryIntegrationTestSuite))
}
