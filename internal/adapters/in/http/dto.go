package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PointDTO carries a coordinate pair on the wire.
type PointDTO struct {
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
}

func pointToDTO(point kernel.GeoPoint) PointDTO {
	return PointDTO{Longitude: point.Longitude(), Latitude: point.Latitude()}
}

type registerShopRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AddressText string `json:"addressText"`
	District    string `json:"district"`
}

type registerCourierRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	AddressText string `json:"addressText"`
	District    string `json:"district"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createOrderRequest struct {
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	DeliveryAddress  string `json:"deliveryAddress"`
	DeliveryDistrict string `json:"deliveryDistrict"`
	PackageDetails   string `json:"packageDetails"`
	Priority         string `json:"priority"`
	Notes            string `json:"notes"`
}

type transitionOrderRequest struct {
	Status string `json:"status"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type updateLocationRequest struct {
	Coords      *PointDTO `json:"coords"`
	AddressText string    `json:"addressText"`
}

type nearbyRequest struct {
	Pickup   *PointDTO `json:"pickup"`
	Location *PointDTO `json:"location"`
}

// origin returns whichever coordinate pair the request carries. Shops send
// pickup, couriers send location; both shapes are accepted on either route.
func (r nearbyRequest) origin() *PointDTO {
	if r.Pickup != nil {
		return r.Pickup
	}
	return r.Location
}

// OrderResponse is the aggregate-backed order body returned by write
// operations.
type OrderResponse struct {
	ID               string     `json:"id"`
	ShopID           string     `json:"shopId"`
	CourierID        *string    `json:"courierId"`
	PickupLocation   PointDTO   `json:"pickupLocation"`
	CustomerName     string     `json:"customerName"`
	CustomerPhone    string     `json:"customerPhone"`
	DeliveryAddress  string     `json:"deliveryAddress"`
	DeliveryDistrict string     `json:"deliveryDistrict"`
	PackageDetails   string     `json:"packageDetails"`
	Priority         string     `json:"priority"`
	Notes            string     `json:"notes"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	AssignedAt       *time.Time `json:"assignedAt"`
	PickedAt         *time.Time `json:"pickedAt"`
	DeliveredAt      *time.Time `json:"deliveredAt"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	var courierID *string
	if id := aggregate.CourierID(); id != nil {
		raw := id.String()
		courierID = &raw
	}

	details := aggregate.Details()

	return OrderResponse{
		ID:               aggregate.ID().String(),
		ShopID:           aggregate.ShopID().String(),
		CourierID:        courierID,
		PickupLocation:   pointToDTO(aggregate.PickupLocation()),
		CustomerName:     details.CustomerName,
		CustomerPhone:    details.CustomerPhone,
		DeliveryAddress:  details.DeliveryAddress,
		DeliveryDistrict: details.DeliveryDistrict,
		PackageDetails:   details.PackageDetails,
		Priority:         details.Priority.String(),
		Notes:            details.Notes,
		Status:           aggregate.Status().String(),
		CreatedAt:        aggregate.CreatedAt(),
		AssignedAt:       aggregate.AssignedAt(),
		PickedAt:         aggregate.PickedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
	}
}

// CourierResponse is the courier body returned by the self-service
// endpoints. ActiveForSeconds is computed at response time from the
// went-active timestamp.
type CourierResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	AddressText      string     `json:"addressText"`
	District         string     `json:"district"`
	Location         PointDTO   `json:"location"`
	Active           bool       `json:"active"`
	WentActiveAt     *time.Time `json:"wentActiveAt"`
	ActiveForSeconds float64    `json:"activeForSeconds"`
}

func courierToResponse(aggregate *courier.Courier) CourierResponse {
	return CourierResponse{
		ID:               aggregate.ID().String(),
		Name:             aggregate.Name(),
		Email:            aggregate.Email(),
		Phone:            aggregate.Phone(),
		AddressText:      aggregate.AddressText(),
		District:         aggregate.District(),
		Location:         pointToDTO(aggregate.Location()),
		Active:           aggregate.IsActive(),
		WentActiveAt:     aggregate.WentActiveAt(),
		ActiveForSeconds: aggregate.ActiveFor(time.Now().UTC()).Seconds(),
	}
}

func courierProfileToResponse(profile queries.GetCourierQueryResponse) CourierResponse {
	activeFor := 0.0
	if profile.WentActiveAt != nil {
		if elapsed := time.Since(*profile.WentActiveAt); elapsed > 0 {
			activeFor = elapsed.Seconds()
		}
	}

	return CourierResponse{
		ID:               profile.ID.String(),
		Name:             profile.Name,
		Email:            profile.Email,
		Phone:            profile.Phone,
		AddressText:      profile.AddressText,
		District:         profile.District,
		Location:         pointToDTO(profile.Location),
		Active:           profile.Active,
		WentActiveAt:     profile.WentActiveAt,
		ActiveForSeconds: activeFor,
	}
}

// ShopOrderResponse is one row of the shop's order history listing.
type ShopOrderResponse struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	CustomerName     string     `json:"customerName"`
	CustomerPhone    string     `json:"customerPhone"`
	DeliveryAddress  string     `json:"deliveryAddress"`
	DeliveryDistrict string     `json:"deliveryDistrict"`
	PackageDetails   string     `json:"packageDetails"`
	Notes            string     `json:"notes"`
	CourierName      *string    `json:"courierName"`
	CourierPhone     *string    `json:"courierPhone"`
	CreatedAt        time.Time  `json:"createdAt"`
	AssignedAt       *time.Time `json:"assignedAt"`
	PickedAt         *time.Time `json:"pickedAt"`
	DeliveredAt      *time.Time `json:"deliveredAt"`
}

func shopOrderToResponse(row queries.GetShopOrdersQueryResponse) ShopOrderResponse {
	return ShopOrderResponse{
		ID:               row.ID.String(),
		Status:           row.Status,
		Priority:         row.Priority,
		CustomerName:     row.CustomerName,
		CustomerPhone:    row.CustomerPhone,
		DeliveryAddress:  row.DeliveryAddress,
		DeliveryDistrict: row.DeliveryDistrict,
		PackageDetails:   row.PackageDetails,
		Notes:            row.Notes,
		CourierName:      row.CourierName,
		CourierPhone:     row.CourierPhone,
		CreatedAt:        row.CreatedAt,
		AssignedAt:       row.AssignedAt,
		PickedAt:         row.PickedAt,
		DeliveredAt:      row.DeliveredAt,
	}
}

// CourierOrderResponse is one row of the courier's workload listing.
type CourierOrderResponse struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	CustomerName     string     `json:"customerName"`
	CustomerPhone    string     `json:"customerPhone"`
	DeliveryAddress  string     `json:"deliveryAddress"`
	DeliveryDistrict string     `json:"deliveryDistrict"`
	PackageDetails   string     `json:"packageDetails"`
	Notes            string     `json:"notes"`
	ShopName         string     `json:"shopName"`
	ShopAddress      string     `json:"shopAddress"`
	PickupLocation   PointDTO   `json:"pickupLocation"`
	CreatedAt        time.Time  `json:"createdAt"`
	AssignedAt       *time.Time `json:"assignedAt"`
	PickedAt         *time.Time `json:"pickedAt"`
}

func courierOrderToResponse(row queries.GetCourierOrdersQueryResponse) CourierOrderResponse {
	return CourierOrderResponse{
		ID:               row.ID.String(),
		Status:           row.Status,
		Priority:         row.Priority,
		CustomerName:     row.CustomerName,
		CustomerPhone:    row.CustomerPhone,
		DeliveryAddress:  row.DeliveryAddress,
		DeliveryDistrict: row.DeliveryDistrict,
		PackageDetails:   row.PackageDetails,
		Notes:            row.Notes,
		ShopName:         row.ShopName,
		ShopAddress:      row.ShopAddress,
		PickupLocation:   pointToDTO(row.PickupLocation),
		CreatedAt:        row.CreatedAt,
		AssignedAt:       row.AssignedAt,
		PickedAt:         row.PickedAt,
	}
}

// NearbyCourierResponse is one courier in the proximity listing.
type NearbyCourierResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	District   string   `json:"district"`
	Location   PointDTO `json:"location"`
	DistanceKm float64  `json:"distanceKm"`
	Status     string   `json:"status"`
}

func nearbyCourierToResponse(row queries.GetNearbyCouriersQueryResponse) NearbyCourierResponse {
	return NearbyCourierResponse{
		ID:         row.ID.String(),
		Name:       row.Name,
		Phone:      row.Phone,
		District:   row.District,
		Location:   pointToDTO(row.Location),
		DistanceKm: row.DistanceKm,
		Status:     string(row.Status),
	}
}

// NearbyShopResponse is one shop in the proximity listing.
type NearbyShopResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AddressText string   `json:"addressText"`
	District    string   `json:"district"`
	Location    PointDTO `json:"location"`
	DistanceKm  float64  `json:"distanceKm"`
}

func nearbyShopToResponse(row queries.GetNearbyShopsQueryResponse) NearbyShopResponse {
	return NearbyShopResponse{
		ID:          row.ID.String(),
		Name:        row.Name,
		AddressText: row.AddressText,
		District:    row.District,
		Location:    pointToDTO(row.Location),
		DistanceKm:  row.DistanceKm,
	}
}

// CreateOrderResponse pairs the created order with the courier assigned at
// creation time, when one was in range.
type CreateOrderResponse struct {
	Order           OrderResponse    `json:"order"`
	AssignedCourier *CourierResponse `json:"assignedCourier"`
}
