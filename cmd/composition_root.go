package cmd

import (
	"time"

	httpin "jinbbq/internal/adapters/in/http"
	"jinbbq/internal/adapters/out/events"
	"jinbbq/internal/adapters/out/memory"
	"jinbbq/internal/adapters/out/postgres"
	"jinbbq/internal/core/application/usecases/commands"
	"jinbbq/internal/core/application/usecases/queries"
	"jinbbq/internal/core/ports"
	"jinbbq/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	carts      *memory.CartStore
	hub        *events.Hub
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.SugaredLogger
	now        func() time.Time
}

// NewCompositionRoot wires the application. Order changes go to the watch hub
// and to every extra publisher, e.g. the RabbitMQ publisher when configured.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	logger *zap.SugaredLogger,
	publishers ...ports.OrderEventPublisher,
) CompositionRoot {
	hub := events.NewHub()
	fanout := events.NewFanout(logger, append([]ports.OrderEventPublisher{hub}, publishers...)...)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		carts:      memory.NewCartStore(),
		hub:        hub,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, fanout),
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuItemUoWFactory() commands.MenuItemUoWFactory {
	return FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
}

// Readers run outside a transaction; a unit of work that is never begun reads
// through the base connection.
func (c *CompositionRoot) menuItemReader() ports.MenuItemRepository {
	return c.uowFactory.Create().MenuItemRepository()
}

func (c *CompositionRoot) orderReader() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuItemUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuItemUoWFactory())
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.menuItemReader(), c.carts, c.config.EnforceRequiredCustomizations)
}

func (c *CompositionRoot) CreateChangeCartQuantityCommandHandler() commands.ChangeCartQuantityCommandHandler {
	return commands.NewChangeCartQuantityCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	return commands.NewRemoveFromCartCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.carts)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.carts, c.config.TaxRate, c.now)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteMenuItemQueryHandler() queries.QuoteMenuItemQueryHandler {
	return queries.NewQuoteMenuItemQueryHandler(c.menuItemReader())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts, c.config.TaxRate)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

// Handlers assembles every use case for the HTTP server.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateMenuItem:     c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:     c.CreateUpdateMenuItemCommandHandler(),
		AddToCart:          c.CreateAddToCartCommandHandler(),
		ChangeCartQuantity: c.CreateChangeCartQuantityCommandHandler(),
		RemoveFromCart:     c.CreateRemoveFromCartCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ListMenuItems:      c.CreateListMenuItemsQueryHandler(),
		QuoteMenuItem:      c.CreateQuoteMenuItemQueryHandler(),
		GetCart:            c.CreateGetCartQueryHandler(),
		GetOrders:          c.CreateGetOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
	}
}

// OrderWatcher streams committed order changes.
func (c *CompositionRoot) OrderWatcher() ports.OrderWatcher {
	return c.hub
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := jobs.NewCartSweepJob(c.carts, c.config.CartIdleTTL, c.config.CartSweepSchedule, c.logger)
	return jobs.NewJobManager(c.logger, sweep)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuItemUoWFactory func() commands.MenuItemUoW

func (f FuncMenuItemUoWFactory) Create() commands.MenuItemUoW {
	return f()
}
