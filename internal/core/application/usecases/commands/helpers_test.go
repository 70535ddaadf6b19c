package commands_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/shop"

	"github.com/stretchr/testify/require"
)

func testDetails() order.Details {
	return order.Details{
		CustomerName:     "Customer",
		CustomerPhone:    "+90 530 000 00 00",
		DeliveryAddress:  "Somewhere 1",
		DeliveryDistrict: "Kadıköy",
		PackageDetails:   "1 box",
		Priority:         order.PriorityNormal,
	}
}

func testPoint(t *testing.T, lon, lat float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	return point
}

func testShop(t *testing.T, id kernel.UUID) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(
		id, "Liman Market", "liman@example.com", "hash",
		"Liman Cad. 3", "Kadıköy", testPoint(t, 29.0, 41.0),
	)
	require.NoError(t, err)
	return s
}

// testActiveCourier returns an active courier standing on the test shop's
// location.
func testActiveCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(
		kernel.NewUUID(), "Courier", "courier@example.com", "hash",
		"+90 533", "", "", testPoint(t, 29.0, 41.0),
	)
	require.NoError(t, err)
	c.SetActive(true)
	return c
}

func testShopActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleShop)
	require.NoError(t, err)
	return actor
}

func testCourierActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleCourier)
	require.NoError(t, err)
	return actor
}
