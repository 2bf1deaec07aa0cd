package http

import (
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body for every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemResponse is one order line in an order response.
type ItemResponse struct {
	MenuItemID     string `json:"menuItemId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// OrderResponse is the JSON shape of an order returned by every order
// endpoint.
type OrderResponse struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customerId"`
	RestaurantID     string         `json:"restaurantId"`
	CourierID        *string        `json:"courierId,omitempty"`
	Items            []ItemResponse `json:"items"`
	SubtotalCents    int64          `json:"subtotalCents"`
	DeliveryFeeCents int64          `json:"deliveryFeeCents"`
	TotalCents       int64          `json:"totalCents"`
	DeliveryAddress  string         `json:"deliveryAddress"`
	PaymentMethod    string         `json:"paymentMethod"`
	PaymentStatus    string         `json:"paymentStatus"`
	Notes            string         `json:"notes,omitempty"`
	Status           string         `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func orderResponseFrom(aggregate *order.Order) OrderResponse {
	var courierID *string
	if id := aggregate.Courier(); id != nil {
		s := id.String()
		courierID = &s
	}

	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemResponse{
			MenuItemID:     item.MenuItemID().String(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	return OrderResponse{
		ID:               aggregate.ID().String(),
		CustomerID:       aggregate.CustomerID().String(),
		RestaurantID:     aggregate.RestaurantID().String(),
		CourierID:        courierID,
		Items:            items,
		SubtotalCents:    aggregate.Subtotal().Cents(),
		DeliveryFeeCents: aggregate.DeliveryFee().Cents(),
		TotalCents:       aggregate.Total().Cents(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PaymentMethod:    string(aggregate.PaymentMethod()),
		PaymentStatus:    string(aggregate.PaymentStatus()),
		Notes:            aggregate.Notes(),
		Status:           aggregate.Status().String(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func orderListResponseFrom(aggregates []*order.Order) []OrderResponse {
	response := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		response = append(response, orderResponseFrom(aggregate))
	}
	return response
}

func writeError(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorResponse{Code: code, Message: message})
}

// writeDomainError maps the application error taxonomy to HTTP status codes.
// AlreadyClaimed wraps ObjectConflict, so it needs no case of its own; both
// land on 409.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorizedRole):
		return writeError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		return writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectConflict):
		return writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(c, http.StatusBadRequest, err.Error())
	default:
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}
