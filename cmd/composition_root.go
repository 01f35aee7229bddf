package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	httpin "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/credentials"
	"eats/internal/adapters/out/notifier"
	"eats/internal/adapters/out/postgres"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
	"eats/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	hub       *notifier.Hub
	publisher ports.EventPublisher
	closers   []io.Closer

	tokens *credentials.JWT
	hasher credentials.BcryptHasher
}

// NewCompositionRoot wires the adapters. The event relay named by
// cfg.EventRelay is connected here, so a broker outage fails startup.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	tokens, err := credentials.NewJWT(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	hub := notifier.NewHub(cfg.SubscriberBuffer, logger)
	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hub:        hub,
		publisher:  hub,
		tokens:     tokens,
		hasher:     credentials.NewBcryptHasher(cfg.BcryptCost),
	}

	switch cfg.EventRelay {
	case RelayKafka:
		relay := notifier.NewKafkaRelay(cfg.KafkaBrokers(), cfg.KafkaOrderChangedTopic)
		root.closers = append(root.closers, relay)
		root.publisher = notifier.NewFanout(hub, notifier.WithTimeout(relay, cfg.RelayTimeout))
	case RelayRabbitMQ:
		relay, dialErr := notifier.DialRabbitRelay(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if dialErr != nil {
			hub.Close()
			return nil, fmt.Errorf("failed to connect event relay: %w", dialErr)
		}
		root.closers = append(root.closers, relay)
		root.publisher = notifier.NewFanout(hub, notifier.WithTimeout(relay, cfg.RelayTimeout))
	}

	return root, nil
}

func (c *CompositionRoot) Hub() *notifier.Hub {
	return c.hub
}

func (c *CompositionRoot) Tokens() *credentials.JWT {
	return c.tokens
}

// Close detaches every live subscription and closes the relay.
func (c *CompositionRoot) Close() error {
	c.hub.Close()
	var errs []error
	for _, closer := range c.closers {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateEditProfileCommandHandler() commands.EditProfileCommandHandler {
	return commands.NewEditProfileCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f, c.cfg.PromotionPeriod())
}

func (c *CompositionRoot) CreateExpirePromotionsCommandHandler() commands.ExpirePromotionsCommandHandler {
	return commands.NewExpirePromotionsCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetPaymentsQueryHandler() queries.GetPaymentsQueryHandler {
	return queries.NewGetPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.uowFactory.Create().UserRepository())
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterAccount:  c.CreateRegisterAccountCommandHandler(),
		Login:            c.CreateLoginCommandHandler(),
		GetProfile:       c.CreateGetProfileQueryHandler(),
		EditProfile:      c.CreateEditProfileCommandHandler(),
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		CreateDish:       c.CreateCreateDishCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		EditOrder:        c.CreateEditOrderCommandHandler(),
		TakeOrder:        c.CreateTakeOrderCommandHandler(),
		CreatePayment:    c.CreateCreatePaymentCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetPayments:      c.CreateGetPaymentsQueryHandler(),
	}, c.hub)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), c.tokens, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpirePromotionsCommandHandler(), c.cfg.PromotionSweepSchedule, c.logger)
}

// orderReader reads outside any transaction: the unit of work falls back to
// the plain connection when Begin was never called.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
