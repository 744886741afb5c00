package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/delivery/http/response"
	"tourgenius/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

type customerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Create handles the customer creation request.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), &usecase.CreateCustomerInput{
		UserID:  deliverycontext.GetUserID(c),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

// List returns the user's customers, optionally filtered by the "q" query
// parameter matching name or email.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context(), deliverycontext.GetUserID(c), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers)
}

// Get returns a single customer.
func (h *CustomerHandler) Get(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), deliverycontext.GetUserID(c), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// Update modifies an existing customer.
func (h *CustomerHandler) Update(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.UpdateCustomer(c.Request().Context(), &usecase.UpdateCustomerInput{
		ID:      customerID,
		UserID:  deliverycontext.GetUserID(c),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), deliverycontext.GetUserID(c), customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Customer deleted"})
}
