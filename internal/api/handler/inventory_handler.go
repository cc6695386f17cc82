package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/api/metrics"
	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

// InventoryHandler handles the asset, category, and department routes.
type InventoryHandler struct {
	inventory ports.InventoryService
}

func NewInventoryHandler(inventory ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// ListAssets handles the asset listing pages for both roles; the service
// applies the policy's row filter, so admins see everything and users see
// their own rows.
//
// @Summary      List visible assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   assetResponse
// @Failure      500  {object}  map[string]string
// @Router       /user/assets [get]
func (h *InventoryHandler) ListAssets(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	listings, err := h.inventory.ListAssets(c.Request().Context(), user)
	if err != nil {
		return err
	}

	assets := make([]assetResponse, 0, len(listings))
	for _, l := range listings {
		assets = append(assets, toAssetResponse(l))
	}
	return c.JSON(http.StatusOK, assets)
}

// CreateAsset handles POST /assets.
//
// @Summary      Record a purchased asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAssetRequest  true  "Asset details"
// @Success      201   {object}  createdAssetResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /assets [post]
func (h *InventoryHandler) CreateAsset(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	datePurchased, err := time.Parse("2006-01-02", req.DatePurchased)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date_purchased must be YYYY-MM-DD")
	}

	asset, err := h.inventory.CreateAsset(c.Request().Context(), user, ports.CreateAssetInput{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		DepartmentID:  req.DepartmentID,
		DatePurchased: datePurchased,
		Cost:          req.Cost,
	})
	if err != nil {
		return err
	}
	metrics.RowsCreatedTotal.WithLabelValues("assets").Inc()

	return c.JSON(http.StatusCreated, toCreatedAssetResponse(*asset))
}

// DeleteAsset handles DELETE /assets/:id (admin only, enforced by both the
// route guard and the service policy).
//
// @Summary      Delete an asset
// @Tags         assets
// @Security     BearerAuth
// @Param        id  path  string  true  "Asset id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /assets/{id} [delete]
func (h *InventoryHandler) DeleteAsset(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.inventory.DeleteAsset(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	metrics.AssetsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// ListCategories handles GET /admin/categories.
func (h *InventoryHandler) ListCategories(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	listings, err := h.inventory.ListCategories(c.Request().Context(), user)
	if err != nil {
		return err
	}

	categories := make([]categoryResponse, 0, len(listings))
	for _, l := range listings {
		categories = append(categories, toCategoryResponse(l))
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category name"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /categories [post]
func (h *InventoryHandler) CreateCategory(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.inventory.CreateCategory(c.Request().Context(), user, ports.CreateCategoryInput{Name: req.Name})
	if err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			metrics.ConflictsTotal.WithLabelValues("categories").Inc()
		}
		return err
	}
	metrics.RowsCreatedTotal.WithLabelValues("categories").Inc()

	return c.JSON(http.StatusCreated, categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	})
}

// ListDepartments handles GET /admin/departments.
func (h *InventoryHandler) ListDepartments(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	listings, err := h.inventory.ListDepartments(c.Request().Context(), user)
	if err != nil {
		return err
	}

	departments := make([]departmentResponse, 0, len(listings))
	for _, l := range listings {
		departments = append(departments, toDepartmentResponse(l))
	}
	return c.JSON(http.StatusOK, departments)
}

// CreateDepartment handles POST /departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDepartmentRequest  true  "Department name"
// @Success      201   {object}  departmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /departments [post]
func (h *InventoryHandler) CreateDepartment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	department, err := h.inventory.CreateDepartment(c.Request().Context(), user, ports.CreateDepartmentInput{Name: req.Name})
	if err != nil {
		if errors.Is(err, domain.ErrDepartmentExists) {
			metrics.ConflictsTotal.WithLabelValues("departments").Inc()
		}
		return err
	}
	metrics.RowsCreatedTotal.WithLabelValues("departments").Inc()

	return c.JSON(http.StatusCreated, departmentResponse{
		ID:        department.ID,
		Name:      department.Name,
		CreatedAt: department.CreatedAt,
	})
}
