package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/core/ports"
)

// DashboardHandler renders the role dashboards. The page guard has already
// enforced the redirect rules by the time these run.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

type adminDashboardResponse struct {
	Welcome     string        `json:"welcome"`
	Stats       statsResponse `json:"stats"`
	Users       int           `json:"total_users"`
	Categories  int           `json:"total_categories"`
	Departments int           `json:"total_departments"`
}

type userDashboardResponse struct {
	Welcome      string          `json:"welcome"`
	Stats        statsResponse   `json:"stats"`
	LastPurchase string          `json:"last_purchase"`
	Recent       []assetResponse `json:"recent_assets"`
}

// Admin handles GET /admin/dashboard.
//
// @Summary      Admin dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminDashboardResponse
// @Failure      500  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboards.AdminOverview(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminDashboardResponse{
		Welcome:     "Welcome back, " + user.Name + "!",
		Stats:       toStatsResponse(overview.Assets),
		Users:       overview.UserCount,
		Categories:  overview.CategoryCount,
		Departments: overview.DepartmentCount,
	})
}

// User handles GET /user/dashboard.
//
// @Summary      User dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userDashboardResponse
// @Failure      500  {object}  map[string]string
// @Router       /user/dashboard [get]
func (h *DashboardHandler) User(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboards.UserOverview(c.Request().Context(), user)
	if err != nil {
		return err
	}

	recent := make([]assetResponse, 0, len(overview.Recent))
	for _, l := range overview.Recent {
		recent = append(recent, toAssetResponse(l))
	}

	return c.JSON(http.StatusOK, userDashboardResponse{
		Welcome:      "Welcome back, " + user.Name + "!",
		Stats:        toStatsResponse(overview.Assets),
		LastPurchase: overview.LastPurchase,
		Recent:       recent,
	})
}
