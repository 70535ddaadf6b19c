package cmd

import (
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/nominatim"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   *nominatim.Client
	hasher     auth.BcryptHasher
	issuer     auth.JWTIssuer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	issuer, err := auth.NewJWTIssuer(config.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   nominatim.NewClient(config.NominatimBaseURL),
		hasher:     auth.NewBcryptHasher(),
		issuer:     issuer,
	}, nil
}

func (c *CompositionRoot) CreateRegisterShopCommandHandler() commands.RegisterShopCommandHandler {
	var f commands.ShopUoWFactory = FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterShopCommandHandler(f, c.geocoder, c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f, c.geocoder, c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.AuthUoWFactory = FuncAuthUoWFactory(func() commands.AuthUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewOrderDispatcher())
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierActiveCommandHandler() commands.SetCourierActiveCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierActiveCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierLocationCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateDispatchPendingOrderCommandHandler() commands.DispatchPendingOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPendingOrderCommandHandler(f, services.NewOrderDispatcher())
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierQueryHandler() queries.GetCourierQueryHandler {
	return queries.NewGetCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyCouriersQueryHandler() queries.GetNearbyCouriersQueryHandler {
	return queries.NewGetNearbyCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyShopsQueryHandler() queries.GetNearbyShopsQueryHandler {
	return queries.NewGetNearbyShopsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server over every use case handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		RegisterShop:    c.CreateRegisterShopCommandHandler(),
		RegisterCourier: c.CreateRegisterCourierCommandHandler(),
		Login:           c.CreateLoginCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		TransitionOrder: c.CreateTransitionOrderStatusCommandHandler(),
		SetActive:       c.CreateSetCourierActiveCommandHandler(),
		UpdateLocation:  c.CreateUpdateCourierLocationCommandHandler(),
		ShopOrders:      c.CreateGetShopOrdersQueryHandler(),
		CourierOrders:   c.CreateGetCourierOrdersQueryHandler(),
		CourierProfile:  c.CreateGetCourierQueryHandler(),
		NearbyCouriers:  c.CreateGetNearbyCouriersQueryHandler(),
		NearbyShops:     c.CreateGetNearbyShopsQueryHandler(),
	}

	return httpin.NewServer(handlers, c.issuer)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}

type FuncAuthUoWFactory func() commands.AuthUoW

func (f FuncAuthUoWFactory) Create() commands.AuthUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
