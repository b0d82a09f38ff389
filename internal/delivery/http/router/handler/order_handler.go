package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	page, err := h.uc.List(c.Request().Context(), identity.UID, listQueryFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Orders retrieved successfully")
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	order, err := h.uc.Get(c.Request().Context(), c.Param("id"), identity.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	payload, err := bindPayload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Create(c.Request().Context(), identity.UID, payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	payload, err := bindPayload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Update(c.Request().Context(), c.Param("id"), identity.UID, payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), identity.UID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Order deleted successfully")
}
