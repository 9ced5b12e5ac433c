package userrepo_test

import (
	"context"
	"testing"

	"tailorshop/internal/adapters/out/postgres/pgtest"
	"tailorshop/internal/adapters/out/postgres/userrepo"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = userrepo.NewGormUserRepository(suite.database.DB, pgtest.NopTracker{})
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddRenameGet() {
	ctx := context.Background()
	u, err := user.NewUser(kernel.NewUUID(), "Ada", "ada@example.com", user.Customer)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, u))

	suite.Require().NoError(u.Rename("Ada L.", "ada.l@example.com"))
	suite.Require().NoError(suite.repository.Update(ctx, u))

	stored, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada L.", stored.Name())
	suite.Equal("ada.l@example.com", stored.Email())
	suite.True(stored.HasRole(user.Customer))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateIDFails() {
	ctx := context.Background()
	u, err := user.NewUser(kernel.NewUUID(), "Grace", "", user.Rider)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, u))

	suite.Require().Error(suite.repository.Add(ctx, u))
}

func (suite *UserRepositoryIntegrationTestSuite) TestMissingUser() {
	ctx := context.Background()
	ghost, err := user.NewUser(kernel.NewUUID(), "Ghost", "", user.Admin)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, ghost.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, ghost)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestListOrdersByName() {
	ctx := context.Background()
	for _, name := range []string{"Zoe", "Ada", "Mia"} {
		u, err := user.NewUser(kernel.NewUUID(), name, "", user.Customer)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, u))
	}

	users, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(users, 3)
	suite.Equal("Ada", users[0].Name())
	suite.Equal("Mia", users[1].Name())
	suite.Equal("Zoe", users[2].Name())
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
