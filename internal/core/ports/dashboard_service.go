package ports

import (
	"context"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// AdminOverview is the admin dashboard view: asset statistics across every
// row plus table counts for the other entities.
type AdminOverview struct {
	Assets          domain.Stats
	UserCount       int
	CategoryCount   int
	DepartmentCount int
}

// UserOverview is the user dashboard view: statistics over the caller's own
// assets and their five most recent entries.
type UserOverview struct {
	Assets       domain.Stats
	LastPurchase string
	Recent       []AssetListing
}

// DashboardService assembles dashboard summaries. Row visibility follows
// the access policy: admins aggregate over all assets, users over their own.
type DashboardService interface {
	AdminOverview(ctx context.Context, user *domain.AuthenticatedUser) (*AdminOverview, error)
	UserOverview(ctx context.Context, user *domain.AuthenticatedUser) (*UserOverview, error)
}
