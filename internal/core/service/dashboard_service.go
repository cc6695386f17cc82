package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

const recentAssetLimit = 5

// DashboardService assembles the per-role dashboard summaries. Statistics
// are recomputed from the store on every call; a dashboard renders once per
// request, so there is nothing worth caching.
type DashboardService struct {
	users       ports.UserRepository
	categories  ports.CategoryRepository
	departments ports.DepartmentRepository
	assets      ports.AssetRepository
	inventory   ports.InventoryService
	log         zerolog.Logger
	now         func() time.Time
}

func NewDashboardService(
	users ports.UserRepository,
	categories ports.CategoryRepository,
	departments ports.DepartmentRepository,
	assets ports.AssetRepository,
	inventory ports.InventoryService,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		users:       users,
		categories:  categories,
		departments: departments,
		assets:      assets,
		inventory:   inventory,
		log:         log,
		now:         time.Now,
	}
}

// AdminOverview aggregates every asset row plus the table counts for users,
// categories, and departments.
func (s *DashboardService) AdminOverview(ctx context.Context, user *domain.AuthenticatedUser) (*ports.AdminOverview, error) {
	decision := domain.Authorize(user, domain.ResourceAssets, domain.ActionRead)
	if !decision.Allow || !decision.Filter.Unrestricted() {
		return nil, domain.ErrForbidden
	}

	assets, err := s.assets.List(ctx, decision.Filter)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.AdminOverview{
		Assets:          domain.Summarize(assets, s.now()),
		UserCount:       len(users),
		CategoryCount:   len(categories),
		DepartmentCount: len(departments),
	}, nil
}

// UserOverview aggregates the caller's own assets and returns the most
// recent entries with category and department names resolved.
func (s *DashboardService) UserOverview(ctx context.Context, user *domain.AuthenticatedUser) (*ports.UserOverview, error) {
	listings, err := s.inventory.ListAssets(ctx, user)
	if err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(listings))
	for _, l := range listings {
		assets = append(assets, l.Asset)
	}
	stats := domain.Summarize(assets, s.now())

	recent := listings
	if len(recent) > recentAssetLimit {
		recent = recent[:recentAssetLimit]
	}

	return &ports.UserOverview{
		Assets:       stats,
		LastPurchase: stats.LastPurchase(),
		Recent:       recent,
	}, nil
}
