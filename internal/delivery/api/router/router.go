// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cambaeats/internal/delivery/api/router/handler"
	"cambaeats/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler       *handler.MenuHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	OrderHandler      *handler.OrderHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler       *handler.MenuHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	orderHandler      *handler.OrderHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:       params.MenuHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		orderHandler:      params.OrderHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)

	// Menu routes
	apiV1.GET("/menu", r.menuHandler.ListProducts)
	apiV1.GET("/menu/:id", r.menuHandler.GetProduct)
	apiV1.GET("/categories", r.menuHandler.ListCategories)

	// Cart routes, bound to the caller's session
	cartGroup := apiV1.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.Process)
	{
		cartGroup.POST("/init", r.cartHandler.Init)
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.GET("/events", r.cartHandler.Events)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/toggle", r.cartHandler.Toggle)
	}

	// Checkout routes, bound to the caller's session
	checkoutGroup := apiV1.Group("/checkout")
	checkoutGroup.Use(r.sessionMiddleware.Process)
	{
		checkoutGroup.GET("", r.checkoutHandler.Get)
		checkoutGroup.POST("/start", r.checkoutHandler.Start)
		checkoutGroup.PUT("/address", r.checkoutHandler.SetAddress)
		checkoutGroup.POST("/back", r.checkoutHandler.Back)
		checkoutGroup.GET("/qr", r.checkoutHandler.PaymentQR)
		checkoutGroup.POST("/payment", r.checkoutHandler.ConfirmPayment)
		checkoutGroup.POST("/order", r.checkoutHandler.PlaceOrder)
	}

	// Order history routes
	apiV1.GET("/orders", r.orderHandler.ListOrders)
	apiV1.GET("/orders/:id", r.orderHandler.GetOrder)
	apiV1.GET("/sales", r.orderHandler.ListSales)
	apiV1.GET("/sales/:id", r.orderHandler.GetSale)
}
