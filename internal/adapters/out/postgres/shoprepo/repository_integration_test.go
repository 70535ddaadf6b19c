package shoprepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/shoprepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shop"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ShopRepositoryIntegrationTestSuite provides integration tests for ShopRepository
// using PostgreSQL containers to verify database persistence behavior.
type ShopRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shoprepo.GormShopRepository
	tracker    *MockAggregateTracker
}

func (suite *ShopRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError matches the production connection so duplicate emails
	// surface as domain validation errors.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shoprepo.ShopDTO{}))
}

func (suite *ShopRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shops").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shoprepo.NewGormShopRepository(suite.db, suite.tracker)
}

func (suite *ShopRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShopRepositoryIntegrationTestSuite) createTestShop(email string) *shop.Shop {
	location, err := kernel.NewGeoPoint(29.0275, 41.0053)
	suite.Require().NoError(err)

	aggregate, err := shop.NewShop(
		kernel.NewUUID(),
		"Pide Palace", email, "$2a$10$hash",
		"Bagdat Cad. 42", "Kadikoy",
		location,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShopRepositoryIntegrationTestSuite) TestAdd_ValidShop_Success() {
	ctx := context.Background()
	aggregate := suite.createTestShop("pide@example.com")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Table("shops").Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShopRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsValidationError() {
	ctx := context.Background()
	first := suite.createTestShop("taken@example.com")
	second := suite.createTestShop("taken@example.com")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ShopRepositoryIntegrationTestSuite) TestGet_ExistingShop_RestoresAllFields() {
	ctx := context.Background()
	aggregate := suite.createTestShop("lahmacun@example.com")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(aggregate.ID()))
	suite.Equal(aggregate.Name(), restored.Name())
	suite.Equal(aggregate.Email(), restored.Email())
	suite.Equal(aggregate.AddressText(), restored.AddressText())
	suite.Equal(aggregate.District(), restored.District())

	equal, err := restored.Location().IsEqual(aggregate.Location())
	suite.Require().NoError(err)
	suite.True(equal)
}

func (suite *ShopRepositoryIntegrationTestSuite) TestGet_NonExistentShop_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShopRepositoryIntegrationTestSuite) TestGetByEmail_ExistingShop_Success() {
	ctx := context.Background()
	aggregate := suite.createTestShop("borek@example.com")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.GetByEmail(ctx, "borek@example.com")
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(aggregate.ID()))
}

func (suite *ShopRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFound() {
	_, err := suite.repository.GetByEmail(context.Background(), "nobody@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestShopRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShopRepositoryIntegrationTestSuite))
}
