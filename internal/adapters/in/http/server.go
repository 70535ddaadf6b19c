// Package http exposes the dispatch application over a JSON REST API.
// It binds requests into commands and queries, runs them, and maps domain
// errors onto HTTP status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterShop    commands.RegisterShopCommandHandler
	RegisterCourier commands.RegisterCourierCommandHandler
	Login           commands.LoginCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	TransitionOrder commands.TransitionOrderStatusCommandHandler
	SetActive       commands.SetCourierActiveCommandHandler
	UpdateLocation  commands.UpdateCourierLocationCommandHandler

	ShopOrders     queries.GetShopOrdersQueryHandler
	CourierOrders  queries.GetCourierOrdersQueryHandler
	CourierProfile queries.GetCourierQueryHandler
	NearbyCouriers queries.GetNearbyCouriersQueryHandler
	NearbyShops    queries.GetNearbyShopsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	parser   TokenParser
}

// NewServer creates an HTTP server over the given use case handlers.
// The parser verifies bearer tokens for the authenticated route groups.
func NewServer(handlers Handlers, parser TokenParser) *Server {
	return &Server{
		handlers: handlers,
		parser:   parser,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance. Routes under
// /api/v1 except auth require a bearer token; shop and courier groups are
// additionally role-gated.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/shops/register", s.RegisterShop)
	authGroup.POST("/couriers/register", s.RegisterCourier)
	authGroup.POST("/shops/login", s.LoginShop)
	authGroup.POST("/couriers/login", s.LoginCourier)

	authenticated := api.Group("", AuthMiddleware(s.parser))
	authenticated.POST("/orders/:id/status", s.TransitionOrderStatus)

	shopOnly := authenticated.Group("", RequireRole(kernel.RoleShop))
	shopOnly.POST("/orders", s.CreateOrder)
	shopOnly.GET("/orders/shop", s.GetShopOrders)
	shopOnly.POST("/couriers/nearby", s.GetNearbyCouriers)

	courierOnly := authenticated.Group("", RequireRole(kernel.RoleCourier))
	courierOnly.GET("/orders/mine", s.GetCourierOrders)
	courierOnly.GET("/couriers/me", s.GetCourierMe)
	courierOnly.POST("/couriers/status", s.SetCourierActive)
	courierOnly.POST("/couriers/location", s.UpdateCourierLocation)
	courierOnly.POST("/shops/nearby", s.GetNearbyShops)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterShop handles POST /api/v1/auth/shops/register.
func (s *Server) RegisterShop(ctx echo.Context) error {
	var req registerShopRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterShopCommand(
		req.Name, req.Email, req.Password, req.AddressText, req.District,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.RegisterShop.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, tokenResponse{Token: result.Token})
}

// RegisterCourier handles POST /api/v1/auth/couriers/register.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req registerCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterCourierCommand(
		req.Name, req.Email, req.Password, req.Phone, req.AddressText, req.District,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.RegisterCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, tokenResponse{Token: result.Token})
}

// LoginShop handles POST /api/v1/auth/shops/login.
func (s *Server) LoginShop(ctx echo.Context) error {
	return s.login(ctx, kernel.RoleShop)
}

// LoginCourier handles POST /api/v1/auth/couriers/login.
func (s *Server) LoginCourier(ctx echo.Context) error {
	return s.login(ctx, kernel.RoleCourier)
}

func (s *Server) login(ctx echo.Context, role kernel.Role) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(role, req.Email, req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	token, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenResponse{Token: token})
}

// CreateOrder handles POST /api/v1/orders. The pickup point is the shop's
// own location; the nearest active courier in range is assigned
// immediately, if any.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	priority, err := order.PriorityFromString(req.Priority)
	if err != nil {
		return s.respondError(ctx, err)
	}

	details := order.Details{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryDistrict: req.DeliveryDistrict,
		PackageDetails:   req.PackageDetails,
		Priority:         priority,
		Notes:            req.Notes,
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, details)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := CreateOrderResponse{Order: orderToResponse(result.Order)}
	if result.AssignedCourier != nil {
		assigned := courierToResponse(result.AssignedCourier)
		response.AssignedCourier = &assigned
	}

	return ctx.JSON(http.StatusCreated, response)
}

// TransitionOrderStatus handles POST /api/v1/orders/:id/status. Shops cancel
// their own pending orders; couriers pick and deliver their assigned ones.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	var req transitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, actor, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetShopOrders handles GET /api/v1/orders/shop.
func (s *Server) GetShopOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	query, err := queries.NewGetShopOrdersQuery(actor.ID())
	if err != nil {
		return s.respondError(ctx, err)
	}

	rows, err := s.handlers.ShopOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ShopOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = shopOrderToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierOrders handles GET /api/v1/orders/mine.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	query, err := queries.NewGetCourierOrdersQuery(actor.ID())
	if err != nil {
		return s.respondError(ctx, err)
	}

	rows, err := s.handlers.CourierOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]CourierOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = courierOrderToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierMe handles GET /api/v1/couriers/me.
func (s *Server) GetCourierMe(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	query, err := queries.NewGetCourierQuery(actor.ID())
	if err != nil {
		return s.respondError(ctx, err)
	}

	profile, err := s.handlers.CourierProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierProfileToResponse(profile))
}

// SetCourierActive handles POST /api/v1/couriers/status.
func (s *Server) SetCourierActive(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	var req setActiveRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCourierActiveCommand(actor.ID(), req.Active)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.SetActive.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierToResponse(updated))
}

// UpdateCourierLocation handles POST /api/v1/couriers/location. The body
// carries either raw coordinates or an address to geocode; coordinates win
// when both are present.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	var req updateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := s.buildLocationCommand(actor, req)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierToResponse(updated))
}

func (s *Server) buildLocationCommand(
	actor kernel.Actor,
	req updateLocationRequest,
) (commands.UpdateCourierLocationCommand, error) {
	if req.Coords != nil {
		point, err := kernel.NewGeoPoint(req.Coords.Longitude, req.Coords.Latitude)
		if err != nil {
			return commands.UpdateCourierLocationCommand{}, err
		}
		return commands.NewUpdateCourierLocationCommand(actor.ID(), point)
	}

	return commands.NewUpdateCourierLocationCommandFromAddress(actor.ID(), req.AddressText)
}

// GetNearbyCouriers handles POST /api/v1/couriers/nearby.
func (s *Server) GetNearbyCouriers(ctx echo.Context) error {
	origin, err := s.bindNearbyOrigin(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetNearbyCouriersQuery(origin)
	if err != nil {
		return s.respondError(ctx, err)
	}

	rows, err := s.handlers.NearbyCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]NearbyCourierResponse, len(rows))
	for i, row := range rows {
		response[i] = nearbyCourierToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNearbyShops handles POST /api/v1/shops/nearby.
func (s *Server) GetNearbyShops(ctx echo.Context) error {
	origin, err := s.bindNearbyOrigin(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetNearbyShopsQuery(origin)
	if err != nil {
		return s.respondError(ctx, err)
	}

	rows, err := s.handlers.NearbyShops.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]NearbyShopResponse, len(rows))
	for i, row := range rows {
		response[i] = nearbyShopToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) bindNearbyOrigin(ctx echo.Context) (kernel.GeoPoint, error) {
	var req nearbyRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("pickup or location")
	}

	origin := req.origin()
	if origin == nil {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("pickup or location")
	}

	return kernel.NewGeoPoint(origin.Longitude, origin.Latitude)
}

// respondError maps domain errors onto HTTP status codes. Unknown errors
// become 500 without leaking internals.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamService):
		status = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func (s *Server) unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "missing bearer token",
	})
}
