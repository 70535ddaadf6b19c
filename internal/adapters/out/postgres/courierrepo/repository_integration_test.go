package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
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

// CourierRepositoryIntegrationTestSuite provides integration tests for CourierRepository
// using PostgreSQL containers to verify database persistence behavior.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(email string) *courier.Courier {
	location, err := kernel.NewGeoPoint(28.9784, 41.0082)
	suite.Require().NoError(err)

	aggregate, err := courier.NewCourier(
		kernel.NewUUID(),
		"Mehmet", email, "$2a$10$hash",
		"+90 555 000 0001", "Istiklal Cad. 10", "Beyoglu",
		location,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()
	aggregate := suite.createTestCourier("mehmet@example.com")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Table("couriers").Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsValidationError() {
	ctx := context.Background()
	first := suite.createTestCourier("taken@example.com")
	second := suite.createTestCourier("taken@example.com")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", second.ID(), second)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_ExistingCourier_RestoresAllFields() {
	ctx := context.Background()
	aggregate := suite.createTestCourier("ayse@example.com")
	aggregate.SetActive(true)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(aggregate.ID()))
	suite.Equal(aggregate.Name(), restored.Name())
	suite.Equal(aggregate.Email(), restored.Email())
	suite.Equal(aggregate.Phone(), restored.Phone())
	suite.Equal(aggregate.AddressText(), restored.AddressText())
	suite.Equal(aggregate.District(), restored.District())
	suite.True(restored.IsActive())
	suite.Require().NotNil(restored.WentActiveAt())

	equal, err := restored.Location().IsEqual(aggregate.Location())
	suite.Require().NoError(err)
	suite.True(equal)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetByEmail_ExistingCourier_Success() {
	ctx := context.Background()
	aggregate := suite.createTestCourier("fatma@example.com")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.GetByEmail(ctx, "fatma@example.com")
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(aggregate.ID()))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFound() {
	_, err := suite.repository.GetByEmail(context.Background(), "nobody@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_Deactivation_ClearsWentActiveAt() {
	ctx := context.Background()
	aggregate := suite.createTestCourier("kemal@example.com")
	aggregate.SetActive(true)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.SetActive(false)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsActive())
	suite.Nil(restored.WentActiveAt())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_MoveTo_PersistsNewLocation() {
	ctx := context.Background()
	aggregate := suite.createTestCourier("zeynep@example.com")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	newLocation, err := kernel.NewGeoPoint(29.0275, 41.0053)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.MoveTo(newLocation, "Bagdat Cad. 1"))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	equal, err := restored.Location().IsEqual(newLocation)
	suite.Require().NoError(err)
	suite.True(equal)
	suite.Equal("Bagdat Cad. 1", restored.AddressText())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllActive_ReturnsOnlyActiveCouriers() {
	ctx := context.Background()

	active := suite.createTestCourier("active@example.com")
	active.SetActive(true)
	offline := suite.createTestCourier("offline@example.com")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, offline))

	couriers, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(couriers, 1)
	suite.True(couriers[0].ID().IsEqual(active.ID()))
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
