package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/api/metrics"
	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

// UserHandler handles the admin-only user listing and provisioning routes.
type UserHandler struct {
	inventory ports.InventoryService
	provision ports.ProvisionService
}

func NewUserHandler(inventory ports.InventoryService, provision ports.ProvisionService) *UserHandler {
	return &UserHandler{inventory: inventory, provision: provision}
}

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,min=2"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
}

// envelope is the response shape of the provisioning endpoint. Exactly one
// of Data and Error is set.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// List handles GET /admin/users.
//
// @Summary      List user profiles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	users, err := h.inventory.ListUsers(c.Request().Context(), user)
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /api/users/create. Unlike the rest of the API it
// always answers with a success/error envelope, because the caller treats
// provisioning failures as normal form feedback rather than HTTP faults.
//
// @Summary      Provision a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /api/users/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{Success: false, Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
	}

	created, err := h.provision.CreateUser(c.Request().Context(), user, ports.ProvisionUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.ConflictsTotal.WithLabelValues("users").Inc()
		}
		return c.JSON(provisionStatus(err), envelope{Success: false, Error: provisionMessage(err)})
	}
	metrics.UsersProvisionedTotal.WithLabelValues(created.Role).Inc()

	return c.JSON(http.StatusCreated, envelope{Success: true, Data: toUserResponse(*created)})
}

func provisionStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func provisionMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return "a user with this email already exists"
	case errors.Is(err, domain.ErrForbidden):
		return "only administrators can create users"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "role must be admin or user"
	default:
		return "could not create user"
	}
}
