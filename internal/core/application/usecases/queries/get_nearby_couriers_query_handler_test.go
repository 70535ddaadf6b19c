package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetNearbyCouriersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetNearbyCouriersQueryHandler
	origin    kernel.GeoPoint
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&courierrepo.CourierDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetNearbyCouriersQueryHandler(db)

	suite.origin, err = kernel.NewGeoPoint(28.9784, 41.0082)
	suite.Require().NoError(err)
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE couriers, orders").Error
	suite.Require().NoError(err)
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) seedCourier(
	name string,
	longitude, latitude float64,
	active bool,
) *courier.Courier {
	location, err := kernel.NewGeoPoint(longitude, latitude)
	suite.Require().NoError(err)

	aggregate, err := courier.NewCourier(
		kernel.NewUUID(),
		name, kernel.NewUUID().String()+"@example.com", "$2a$10$hash",
		"+90 555 000 0001", "Istiklal Cad. 10", "Beyoglu",
		location,
	)
	suite.Require().NoError(err)
	if active {
		aggregate.SetActive(true)
	}

	repository := courierrepo.NewGormCourierRepository(suite.db, noopTracker{})
	suite.Require().NoError(repository.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) TestHandle_NoActiveCouriers_ReturnsEmptySlice() {
	suite.seedCourier("Offline", 28.9800, 41.0090, false)

	query, err := queries.NewGetNearbyCouriersQuery(suite.origin)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) TestHandle_OrdersByDistance() {
	// ~0.01 degrees of latitude is roughly 1.1 km
	far := suite.seedCourier("Far", 28.9784, 41.0582, true)
	near := suite.seedCourier("Near", 28.9784, 41.0182, true)

	query, err := queries.NewGetNearbyCouriersQuery(suite.origin)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(near.ID()))
	suite.True(result[1].ID.IsEqual(far.ID()))
	suite.Less(result[0].DistanceKm, result[1].DistanceKm)
	suite.InDelta(1.1, result[0].DistanceKm, 0.2)
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) TestHandle_CouriersBeyondRadius_AreExcluded() {
	// ~0.25 degrees of latitude is roughly 28 km, beyond the 20 km radius
	suite.seedCourier("Too Far", 28.9784, 41.2582, true)
	within := suite.seedCourier("Within", 28.9784, 41.0282, true)

	query, err := queries.NewGetNearbyCouriersQuery(suite.origin)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(within.ID()))
}

func (suite *GetNearbyCouriersQueryHandlerTestSuite) TestHandle_CourierWithActiveOrder_IsBusy() {
	busy := suite.seedCourier("Busy", 28.9800, 41.0090, true)
	suite.seedCourier("Free", 28.9810, 41.0100, true)

	pickup, err := kernel.NewGeoPoint(28.9784, 41.0082)
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), pickup, order.Details{
		CustomerName:     "Ali Veli",
		CustomerPhone:    "+90 555 111 2233",
		DeliveryAddress:  "Moda Cad. 5",
		DeliveryDistrict: "Kadikoy",
		PackageDetails:   "1x kebab",
		Priority:         order.PriorityNormal,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Assign(busy.ID()))

	repository := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repository.Add(context.Background(), aggregate))

	query, err := queries.NewGetNearbyCouriersQuery(suite.origin)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	statuses := map[string]courier.Status{}
	for _, row := range result {
		statuses[row.Name] = row.Status
	}
	suite.Equal(courier.StatusBusy, statuses["Busy"])
	suite.Equal(courier.StatusAvailable, statuses["Free"])
}

func TestGetNearbyCouriersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetNearbyCouriersQueryHandlerTestSuite))
}
