// Package servers provides primitives to interact with the openapi HTTP API.
//
// The types and echo bindings follow the layout oapi-codegen produces for the
// echo server target and are kept in step with api/openapi.json by hand. Any
// path or schema change there needs the matching change here.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for OrderStatus.
const (
	Cooked    OrderStatus = "Cooked"
	Cooking   OrderStatus = "Cooking"
	Delivered OrderStatus = "Delivered"
	PickedUp  OrderStatus = "PickedUp"
	Pending   OrderStatus = "Pending"
)

// Defines values for Role.
const (
	Client   Role = "Client"
	Delivery Role = "Delivery"
	Owner    Role = "Owner"
)

// CreateAccountRequest defines model for CreateAccountRequest.
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// CreateAccountResponse defines model for CreateAccountResponse.
type CreateAccountResponse struct {
	Id openapi_types.UUID `json:"id"`
	Ok bool               `json:"ok"`
}

// CreateDishRequest defines model for CreateDishRequest.
type CreateDishRequest struct {
	Name    string        `json:"name"`
	Options *[]DishOption `json:"options,omitempty"`
	Price   float64       `json:"price"`
}

// CreateOrderItem defines model for CreateOrderItem.
type CreateOrderItem struct {
	DishId  openapi_types.UUID `json:"dishId"`
	Options *[]OrderItemOption `json:"options,omitempty"`
}

// CreateOrderRequest defines model for CreateOrderRequest.
type CreateOrderRequest struct {
	Items        []CreateOrderItem  `json:"items"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
}

// CreatePaymentRequest defines model for CreatePaymentRequest.
type CreatePaymentRequest struct {
	RestaurantId  openapi_types.UUID `json:"restaurantId"`
	TransactionId string             `json:"transactionId"`
}

// CreateRestaurantRequest defines model for CreateRestaurantRequest.
type CreateRestaurantRequest struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Dish defines model for Dish.
type Dish struct {
	Id           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	Options      []DishOption       `json:"options"`
	Price        float64            `json:"price"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
}

// DishChoice defines model for DishChoice.
type DishChoice struct {
	Extra *float64 `json:"extra,omitempty"`
	Name  string   `json:"name"`
}

// DishOption defines model for DishOption.
type DishOption struct {
	Choices *[]DishChoice `json:"choices,omitempty"`
	Extra   *float64      `json:"extra,omitempty"`
	Name    string        `json:"name"`
}

// DishResponse defines model for DishResponse.
type DishResponse struct {
	Dish Dish `json:"dish"`
	Ok   bool `json:"ok"`
}

// EditOrderRequest defines model for EditOrderRequest.
type EditOrderRequest struct {
	Status OrderStatus `json:"status"`
}

// EditProfileRequest defines model for EditProfileRequest.
type EditProfileRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
	Ok    bool   `json:"ok"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse defines model for LoginResponse.
type LoginResponse struct {
	Ok    bool   `json:"ok"`
	Token string `json:"token"`
}

// OkResponse defines model for OkResponse.
type OkResponse struct {
	Ok bool `json:"ok"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt    time.Time           `json:"createdAt"`
	CustomerId   openapi_types.UUID  `json:"customerId"`
	DriverId     *openapi_types.UUID `json:"driverId,omitempty"`
	Id           openapi_types.UUID  `json:"id"`
	Items        []OrderItem         `json:"items"`
	OwnerId      openapi_types.UUID  `json:"ownerId"`
	RestaurantId openapi_types.UUID  `json:"restaurantId"`
	Status       OrderStatus         `json:"status"`
	Total        float64             `json:"total"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	DishId  openapi_types.UUID `json:"dishId"`
	Options []OrderItemOption  `json:"options"`
}

// OrderItemOption defines model for OrderItemOption.
type OrderItemOption struct {
	Choice *string `json:"choice,omitempty"`
	Name   string  `json:"name"`
}

// OrderResponse defines model for OrderResponse.
type OrderResponse struct {
	Ok    bool  `json:"ok"`
	Order Order `json:"order"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrdersResponse defines model for OrdersResponse.
type OrdersResponse struct {
	Ok     bool    `json:"ok"`
	Orders []Order `json:"orders"`
}

// Payment defines model for Payment.
type Payment struct {
	CreatedAt     time.Time          `json:"createdAt"`
	Id            openapi_types.UUID `json:"id"`
	RestaurantId  openapi_types.UUID `json:"restaurantId"`
	TransactionId string             `json:"transactionId"`
}

// PaymentResponse defines model for PaymentResponse.
type PaymentResponse struct {
	Ok      bool    `json:"ok"`
	Payment Payment `json:"payment"`
}

// PaymentsResponse defines model for PaymentsResponse.
type PaymentsResponse struct {
	Ok       bool      `json:"ok"`
	Payments []Payment `json:"payments"`
}

// Restaurant defines model for Restaurant.
type Restaurant struct {
	Address       string             `json:"address"`
	Id            openapi_types.UUID `json:"id"`
	IsPromoted    bool               `json:"isPromoted"`
	Name          string             `json:"name"`
	OwnerId       openapi_types.UUID `json:"ownerId"`
	PromotedUntil *time.Time         `json:"promotedUntil,omitempty"`
}

// Profile defines model for Profile.
type Profile struct {
	Email string             `json:"email"`
	Id    openapi_types.UUID `json:"id"`
	Role  Role               `json:"role"`
}

// ProfileResponse defines model for ProfileResponse.
type ProfileResponse struct {
	Ok      bool    `json:"ok"`
	Profile Profile `json:"profile"`
}

// RestaurantResponse defines model for RestaurantResponse.
type RestaurantResponse struct {
	Ok         bool       `json:"ok"`
	Restaurant Restaurant `json:"restaurant"`
}

// Role defines model for Role.
type Role string

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// CreateAccountJSONRequestBody defines body for CreateAccount for application/json ContentType.
type CreateAccountJSONRequestBody = CreateAccountRequest

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// EditProfileJSONRequestBody defines body for EditProfile for application/json ContentType.
type EditProfileJSONRequestBody = EditProfileRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = CreateOrderRequest

// EditOrderJSONRequestBody defines body for EditOrder for application/json ContentType.
type EditOrderJSONRequestBody = EditOrderRequest

// CreatePaymentJSONRequestBody defines body for CreatePayment for application/json ContentType.
type CreatePaymentJSONRequestBody = CreatePaymentRequest

// CreateRestaurantJSONRequestBody defines body for CreateRestaurant for application/json ContentType.
type CreateRestaurantJSONRequestBody = CreateRestaurantRequest

// CreateDishJSONRequestBody defines body for CreateDish for application/json ContentType.
type CreateDishJSONRequestBody = CreateDishRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /api/v1/accounts)
	CreateAccount(ctx echo.Context) error

	// (POST /api/v1/login)
	Login(ctx echo.Context) error

	// (GET /api/v1/me)
	GetProfile(ctx echo.Context) error

	// (PATCH /api/v1/me)
	EditProfile(ctx echo.Context) error

	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error

	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// (PATCH /api/v1/orders/{orderId})
	EditOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// (POST /api/v1/orders/{orderId}/take)
	TakeOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /api/v1/payments)
	GetPayments(ctx echo.Context) error

	// (POST /api/v1/payments)
	CreatePayment(ctx echo.Context) error

	// (POST /api/v1/restaurants)
	CreateRestaurant(ctx echo.Context) error

	// (POST /api/v1/restaurants/{restaurantId}/dishes)
	CreateDish(ctx echo.Context, restaurantId openapi_types.UUID) error

	// (GET /api/v1/subscriptions/cooked-orders)
	SubscribeCookedOrders(ctx echo.Context) error

	// (GET /api/v1/subscriptions/orders/{orderId})
	SubscribeOrderUpdates(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /api/v1/subscriptions/pending-orders)
	SubscribePendingOrders(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateAccount converts echo context to params.
func (w *ServerInterfaceWrapper) CreateAccount(ctx echo.Context) error {
	return w.Handler.CreateAccount(ctx)
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// GetProfile converts echo context to params.
func (w *ServerInterfaceWrapper) GetProfile(ctx echo.Context) error {
	return w.Handler.GetProfile(ctx)
}

// EditProfile converts echo context to params.
func (w *ServerInterfaceWrapper) EditProfile(ctx echo.Context) error {
	return w.Handler.EditProfile(ctx)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params GetOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetOrder(ctx, orderId)
}

// EditOrder converts echo context to params.
func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.EditOrder(ctx, orderId)
}

// TakeOrder converts echo context to params.
func (w *ServerInterfaceWrapper) TakeOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.TakeOrder(ctx, orderId)
}

// GetPayments converts echo context to params.
func (w *ServerInterfaceWrapper) GetPayments(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetPayments(ctx)
}

// CreatePayment converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePayment(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreatePayment(ctx)
}

// CreateRestaurant converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRestaurant(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateRestaurant(ctx)
}

// CreateDish converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	restaurantId, err := bindUUIDPathParam(ctx, "restaurantId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateDish(ctx, restaurantId)
}

// SubscribeCookedOrders converts echo context to params.
func (w *ServerInterfaceWrapper) SubscribeCookedOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.SubscribeCookedOrders(ctx)
}

// SubscribeOrderUpdates converts echo context to params.
func (w *ServerInterfaceWrapper) SubscribeOrderUpdates(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.SubscribeOrderUpdates(ctx, orderId)
}

// SubscribePendingOrders converts echo context to params.
func (w *ServerInterfaceWrapper) SubscribePendingOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.SubscribePendingOrders(ctx)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var value openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return value, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of echo routing used by RegisterHandlers, so that
// both *echo.Echo and *echo.Group can be passed.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/accounts", wrapper.CreateAccount)
	router.POST(baseURL+"/api/v1/login", wrapper.Login)
	router.GET(baseURL+"/api/v1/me", wrapper.GetProfile)
	router.PATCH(baseURL+"/api/v1/me", wrapper.EditProfile)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", wrapper.EditOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/take", wrapper.TakeOrder)
	router.GET(baseURL+"/api/v1/payments", wrapper.GetPayments)
	router.POST(baseURL+"/api/v1/payments", wrapper.CreatePayment)
	router.POST(baseURL+"/api/v1/restaurants", wrapper.CreateRestaurant)
	router.POST(baseURL+"/api/v1/restaurants/:restaurantId/dishes", wrapper.CreateDish)
	router.GET(baseURL+"/api/v1/subscriptions/cooked-orders", wrapper.SubscribeCookedOrders)
	router.GET(baseURL+"/api/v1/subscriptions/orders/:orderId", wrapper.SubscribeOrderUpdates)
	router.GET(baseURL+"/api/v1/subscriptions/pending-orders", wrapper.SubscribePendingOrders)
}
