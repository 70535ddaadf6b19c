package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/shoprepo"
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

// noopTracker satisfies the repository tracker without recording anything.
// Query tests only need seeded rows, not change tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type GetShopOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShopOrdersQueryHandler
}

func (suite *GetShopOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&shoprepo.ShopDTO{}, &courierrepo.CourierDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetShopOrdersQueryHandler(db)
}

func (suite *GetShopOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, couriers, shops").Error
	suite.Require().NoError(err)
}

func (suite *GetShopOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetShopOrdersQueryHandlerTestSuite) seedOrder(shopID kernel.UUID, customerName string) *order.Order {
	pickup, err := kernel.NewGeoPoint(28.9784, 41.0082)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), shopID, pickup, order.Details{
		CustomerName:     customerName,
		CustomerPhone:    "+90 555 111 2233",
		DeliveryAddress:  "Moda Cad. 5",
		DeliveryDistrict: "Kadikoy",
		PackageDetails:   "1x kebab",
		Priority:         order.PriorityNormal,
	})
	suite.Require().NoError(err)

	repository := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repository.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetShopOrdersQueryHandlerTestSuite) seedCourier(name, email, phone string) *courier.Courier {
	location, err := kernel.NewGeoPoint(28.9900, 41.0100)
	suite.Require().NoError(err)

	aggregate, err := courier.NewCourier(
		kernel.NewUUID(),
		name, email, "$2a$10$hash",
		phone, "Istiklal Cad. 10", "Beyoglu",
		location,
	)
	suite.Require().NoError(err)

	repository := courierrepo.NewGormCourierRepository(suite.db, noopTracker{})
	suite.Require().NoError(repository.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetShopOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetShopOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetShopOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnOrdersNewestFirst() {
	shopID := kernel.NewUUID()
	first := suite.seedOrder(shopID, "First Customer")
	second := suite.seedOrder(shopID, "Second Customer")
	suite.seedOrder(kernel.NewUUID(), "Other Shop Customer")

	query, err := queries.NewGetShopOrdersQuery(shopID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.True(result[1].ID.IsEqual(first.ID()))
	suite.Equal("Second Customer", result[0].CustomerName)
	suite.Equal(order.Pending.String(), result[0].Status)
	suite.Nil(result[0].CourierName)
}

func (suite *GetShopOrdersQueryHandlerTestSuite) TestHandle_AssignedOrder_IncludesCourierContact() {
	shopID := kernel.NewUUID()
	seeded := suite.seedOrder(shopID, "Ali Veli")
	assignee := suite.seedCourier("Mehmet", "mehmet@example.com", "+90 555 000 0001")

	suite.Require().NoError(seeded.Assign(assignee.ID()))
	repository := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repository.Update(context.Background(), seeded))

	query, err := queries.NewGetShopOrdersQuery(shopID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(order.Assigned.String(), result[0].Status)
	suite.Require().NotNil(result[0].CourierName)
	suite.Equal("Mehmet", *result[0].CourierName)
	suite.Require().NotNil(result[0].CourierPhone)
	suite.Equal("+90 555 000 0001", *result[0].CourierPhone)
	suite.NotNil(result[0].AssignedAt)
}

func TestGetShopOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShopOrdersQueryHandlerTestSuite))
}
