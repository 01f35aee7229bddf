package http

import (
	"context"
	"net/http"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

type (
	registerAccountHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterAccountCommand) (*user.User, error)
	}
	loginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (string, error)
	}
	editProfileHandler interface {
		Handle(ctx context.Context, cmd commands.EditProfileCommand) (*user.User, error)
	}
	getProfileHandler interface {
		Handle(ctx context.Context, query queries.GetProfileQuery) (*user.User, error)
	}
	createRestaurantHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRestaurantCommand) (*restaurant.Restaurant, error)
	}
	createDishHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDishCommand) (*restaurant.Dish, error)
	}
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	editOrderHandler interface {
		Handle(ctx context.Context, cmd commands.EditOrderCommand) (*order.Order, error)
	}
	takeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TakeOrderCommand) error
	}
	createPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePaymentCommand) (*payment.Payment, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	getOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]*order.Order, error)
	}
	getPaymentsHandler interface {
		Handle(ctx context.Context, query queries.GetPaymentsQuery) ([]queries.GetPaymentsQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	RegisterAccount  registerAccountHandler
	Login            loginHandler
	GetProfile       getProfileHandler
	EditProfile      editProfileHandler
	CreateRestaurant createRestaurantHandler
	CreateDish       createDishHandler
	CreateOrder      createOrderHandler
	EditOrder        editOrderHandler
	TakeOrder        takeOrderHandler
	CreatePayment    createPaymentHandler
	GetOrder         getOrderHandler
	GetOrders        getOrdersHandler
	GetPayments      getPaymentsHandler
}

// Server implements servers.ServerInterface on top of the application use
// cases and the notification hub.
type Server struct {
	handlers      Handlers
	subscriptions Subscriptions
	keepAlive     time.Duration
}

func NewServer(handlers Handlers, subscriptions Subscriptions) *Server {
	return &Server{
		handlers:      handlers,
		subscriptions: subscriptions,
	}
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var req servers.CreateAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	role, err := user.ParseRole(string(req.Role))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), req.Email, req.Password, role)
	if err != nil {
		return fail(ctx, err)
	}

	account, err := s.handlers.RegisterAccount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreateAccountResponse{Ok: true, Id: toAPIUUID(account.ID())})
}

// Login handles POST /api/v1/login.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return fail(ctx, err)
	}

	token, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{Ok: true, Token: token})
}

// GetProfile handles GET /api/v1/me.
func (s *Server) GetProfile(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetProfileQuery(actor)
	if err != nil {
		return fail(ctx, err)
	}

	account, err := s.handlers.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ProfileResponse{Ok: true, Profile: profileResponse(account)})
}

// EditProfile handles PATCH /api/v1/me.
func (s *Server) EditProfile(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req servers.EditProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewEditProfileCommand(actor, req.Email, req.Password)
	if err != nil {
		return fail(ctx, err)
	}

	account, err := s.handlers.EditProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ProfileResponse{Ok: true, Profile: profileResponse(account)})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req servers.CreateRestaurantRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), actor, req.Name, req.Address)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.handlers.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.RestaurantResponse{Ok: true, Restaurant: restaurantResponse(created)})
}

// CreateDish handles POST /api/v1/restaurants/{restaurantId}/dishes.
func (s *Server) CreateDish(ctx echo.Context, restaurantId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req servers.CreateDishRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	restaurantID, err := toKernelUUID("restaurant", restaurantId)
	if err != nil {
		return fail(ctx, err)
	}
	price, err := moneyFrom("price", req.Price)
	if err != nil {
		return fail(ctx, err)
	}
	options, err := toDishOptions(req.Options)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateDishCommand(kernel.NewUUID(), actor, restaurantID, req.Name, price, options)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.handlers.CreateDish.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DishResponse{Ok: true, Dish: dishResponse(created)})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req servers.CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	restaurantID, err := toKernelUUID("restaurant", req.RestaurantId)
	if err != nil {
		return fail(ctx, err)
	}
	items, err := toOrderItems(req.Items)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, restaurantID, items)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderResponse{Ok: true, Order: orderResponse(created)})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewGetOrdersQuery(actor, status)
	if err != nil {
		return fail(ctx, err)
	}

	found, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	orders := make([]servers.Order, 0, len(found))
	for _, o := range found {
		orders = append(orders, orderResponse(o))
	}

	return ctx.JSON(http.StatusOK, servers.OrdersResponse{Ok: true, Orders: orders})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := toKernelUUID("order", orderId)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{Ok: true, Order: orderResponse(found)})
}

// EditOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) EditOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req servers.EditOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	orderID, err := toKernelUUID("order", orderId)
	if err != nil {
		return fail(ctx, err)
	}
	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewEditOrderCommand(actor, orderID, status)
	if err != nil {
		return fail(ctx, err)
	}

	edited, err := s.handlers.EditOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{Ok: true, Order: orderResponse(edited)})
}

// TakeOrder handles POST /api/v1/orders/{orderId}/take.
func (s *Server) TakeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := toKernelUUID("order", orderId)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewTakeOrderCommand(actor, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.TakeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OkResponse{Ok: true})
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req servers.CreatePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	restaurantID, err := toKernelUUID("restaurant", req.RestaurantId)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), actor, req.TransactionId, restaurantID)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.handlers.CreatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.PaymentResponse{Ok: true, Payment: paymentResponse(created)})
}

// GetPayments handles GET /api/v1/payments.
func (s *Server) GetPayments(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetPaymentsQuery(actor)
	if err != nil {
		return fail(ctx, err)
	}

	rows, err := s.handlers.GetPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	payments := make([]servers.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, paymentRowResponse(row))
	}

	return ctx.JSON(http.StatusOK, servers.PaymentsResponse{Ok: true, Payments: payments})
}
