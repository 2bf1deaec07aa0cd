// Package http exposes the order workflow over HTTP. It translates between
// the wire and the application's commands/queries; no business rules live
// here.
package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	changeStatusHandler  commands.ChangeOrderStatusCommandHandler
	claimOrderHandler    commands.ClaimOrderCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler

	getOrderHandler         queries.GetOrderQueryHandler
	customerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	restaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	availableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	courierOrdersHandler    queries.GetCourierOrdersQueryHandler

	// catalog resolves which restaurant an authenticated restaurant user
	// owns; orders reference restaurants, not their owners.
	catalog ports.RestaurantCatalog
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	restaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	courierOrdersHandler queries.GetCourierOrdersQueryHandler,
	catalog ports.RestaurantCatalog,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		changeStatusHandler:     changeStatusHandler,
		claimOrderHandler:       claimOrderHandler,
		markDeliveredHandler:    markDeliveredHandler,
		getOrderHandler:         getOrderHandler,
		customerOrdersHandler:   customerOrdersHandler,
		restaurantOrdersHandler: restaurantOrdersHandler,
		availableOrdersHandler:  availableOrdersHandler,
		courierOrdersHandler:    courierOrdersHandler,
		catalog:                 catalog,
	}
}

// RegisterRoutes wires all order and delivery routes under /api/v1 behind
// the bearer middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier ports.TokenVerifier) {
	api := e.Group("/api/v1", BearerAuth(verifier))

	api.POST("/orders", s.CreateOrder, RequireRole(order.RoleCustomer))
	api.GET("/orders/user", s.ListCustomerOrders, RequireRole(order.RoleCustomer))
	api.GET("/orders", s.ListRestaurantOrders, RequireRole(order.RoleRestaurant))
	api.GET("/orders/:id", s.GetOrder, RequireRole(order.RoleCustomer, order.RoleRestaurant))
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus, RequireRole(order.RoleCustomer, order.RoleRestaurant))
	api.PUT("/orders/:id/status", s.UpdateOrderStatus, RequireRole(order.RoleCustomer, order.RoleRestaurant))
	api.PUT("/orders/:id/cancel", s.CancelOrder, RequireRole(order.RoleCustomer, order.RoleRestaurant))

	api.GET("/delivery/available", s.ListAvailableOrders, RequireRole(order.RoleCourier))
	api.GET("/delivery/current", s.ListCurrentDeliveries, RequireRole(order.RoleCourier))
	api.GET("/delivery/history", s.ListDeliveryHistory, RequireRole(order.RoleCourier))
	api.POST("/delivery/:id/accept", s.ClaimOrder, RequireRole(order.RoleCourier))
	api.PATCH("/delivery/:id/deliver", s.MarkDelivered, RequireRole(order.RoleCourier))
}

type createOrderItemRequest struct {
	MenuItemID     string `json:"menuItemId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

type createOrderRequest struct {
	RestaurantID    string                   `json:"restaurantId"`
	Items           []createOrderItemRequest `json:"items"`
	DeliveryAddress string                   `json:"deliveryAddress"`
	PaymentMethod   string                   `json:"paymentMethod"`
	Notes           string                   `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	claims, _ := claimsFrom(c)

	var body createOrderRequest
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid restaurantId")
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, itemErr := kernel.UUIDFromString(item.MenuItemID)
		if itemErr != nil {
			return writeError(c, http.StatusBadRequest, "invalid menuItemId")
		}
		items = append(items, commands.ItemInput{
			MenuItemID:     menuItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		claims.UserID, restaurantID, items,
		body.DeliveryAddress, order.PaymentMethod(body.PaymentMethod), body.Notes)
	if err != nil {
		return writeDomainError(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponseFrom(created))
}

// ListCustomerOrders handles GET /api/v1/orders/user.
func (s *Server) ListCustomerOrders(c echo.Context) error {
	claims, _ := claimsFrom(c)

	query, err := queries.NewGetCustomerOrdersQuery(claims.UserID)
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.customerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponseFrom(orders))
}

// ListRestaurantOrders handles GET /api/v1/orders.
func (s *Server) ListRestaurantOrders(c echo.Context) error {
	claims, _ := claimsFrom(c)

	restaurantID, err := s.catalog.GetOrCreateDefault(c.Request().Context(), claims.UserID)
	if err != nil {
		return writeDomainError(c, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID)
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.restaurantOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponseFrom(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	claims, _ := claimsFrom(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid order id")
	}

	actorID, err := s.resolveActorID(c, claims)
	if err != nil {
		return writeDomainError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID, claims.Role)
	if err != nil {
		return writeDomainError(c, err)
	}

	aggregate, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFrom(aggregate))
}

// UpdateOrderStatus handles PATCH/PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	claims, _ := claimsFrom(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid order id")
	}

	var body updateStatusRequest
	if err = c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	actorID, err := s.resolveActorID(c, claims)
	if err != nil {
		return writeDomainError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(body.Status), actorID, claims.Role)
	if err != nil {
		return writeDomainError(c, err)
	}

	updated, err := s.changeStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFrom(updated))
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	claims, _ := claimsFrom(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid order id")
	}

	actorID, err := s.resolveActorID(c, claims)
	if err != nil {
		return writeDomainError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, claims.Role)
	if err != nil {
		return writeDomainError(c, err)
	}

	cancelled, err := s.changeStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFrom(cancelled))
}

// ListAvailableOrders handles GET /api/v1/delivery/available.
func (s *Server) ListAvailableOrders(c echo.Context) error {
	query, err := queries.NewGetAvailableOrdersQuery()
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.availableOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponseFrom(orders))
}

// ListCurrentDeliveries handles GET /api/v1/delivery/current.
func (s *Server) ListCurrentDeliveries(c echo.Context) error {
	return s.listCourierOrders(c, queries.CourierOrdersScopeCurrent)
}

// ListDeliveryHistory handles GET /api/v1/delivery/history.
func (s *Server) ListDeliveryHistory(c echo.Context) error {
	return s.listCourierOrders(c, queries.CourierOrdersScopeHistory)
}

func (s *Server) listCourierOrders(c echo.Context, scope queries.CourierOrdersScope) error {
	claims, _ := claimsFrom(c)

	query, err := queries.NewGetCourierOrdersQuery(claims.UserID, scope)
	if err != nil {
		return writeDomainError(c, err)
	}

	orders, err := s.courierOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponseFrom(orders))
}

// ClaimOrder handles POST /api/v1/delivery/:id/accept.
func (s *Server) ClaimOrder(c echo.Context) error {
	claims, _ := claimsFrom(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, claims.UserID)
	if err != nil {
		return writeDomainError(c, err)
	}

	claimed, err := s.claimOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFrom(claimed))
}

// MarkDelivered handles PATCH /api/v1/delivery/:id/deliver.
func (s *Server) MarkDelivered(c echo.Context) error {
	claims, _ := claimsFrom(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, claims.UserID)
	if err != nil {
		return writeDomainError(c, err)
	}

	delivered, err := s.markDeliveredHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFrom(delivered))
}

// resolveActorID maps the authenticated user to the ownership identity the
// order records: customers act as themselves, restaurant users act as the
// restaurant they own.
func (s *Server) resolveActorID(c echo.Context, claims ports.AuthClaims) (kernel.UUID, error) {
	if claims.Role == order.RoleRestaurant {
		return s.catalog.GetOrCreateDefault(c.Request().Context(), claims.UserID)
	}
	return claims.UserID, nil
}
