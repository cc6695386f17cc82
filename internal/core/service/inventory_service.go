package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

// InventoryService is the role-gated CRUD layer over the four tables.
type InventoryService struct {
	users       ports.UserRepository
	categories  ports.CategoryRepository
	departments ports.DepartmentRepository
	assets      ports.AssetRepository
	log         zerolog.Logger
	now         func() time.Time
}

func NewInventoryService(
	users ports.UserRepository,
	categories ports.CategoryRepository,
	departments ports.DepartmentRepository,
	assets ports.AssetRepository,
	log zerolog.Logger,
) *InventoryService {
	return &InventoryService{
		users:       users,
		categories:  categories,
		departments: departments,
		assets:      assets,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *InventoryService) ListCategories(ctx context.Context, user *domain.AuthenticatedUser) ([]ports.CategoryListing, error) {
	if !domain.Authorize(user, domain.ResourceCategories, domain.ActionRead).Allow {
		return nil, domain.ErrForbidden
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	creators, err := s.creatorIndex(ctx, user)
	if err != nil {
		return nil, err
	}

	listings := make([]ports.CategoryListing, 0, len(categories))
	for _, c := range categories {
		listings = append(listings, ports.CategoryListing{Category: c, Creator: creators[c.CreatedBy]})
	}
	return listings, nil
}

func (s *InventoryService) CreateCategory(ctx context.Context, user *domain.AuthenticatedUser, input ports.CreateCategoryInput) (*domain.Category, error) {
	decision := domain.Authorize(user, domain.ResourceCategories, domain.ActionCreate)
	if !decision.Allow {
		return nil, domain.ErrForbidden
	}

	category := &domain.Category{
		ID:        uuid.NewString(),
		Name:      input.Name,
		CreatedBy: decision.ForcedCreator,
		CreatedAt: s.now(),
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", category.ID).Str("name", category.Name).Str("created_by", category.CreatedBy).Msg("category created")
	return category, nil
}

func (s *InventoryService) ListDepartments(ctx context.Context, user *domain.AuthenticatedUser) ([]ports.DepartmentListing, error) {
	if !domain.Authorize(user, domain.ResourceDepartments, domain.ActionRead).Allow {
		return nil, domain.ErrForbidden
	}

	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}

	creators, err := s.creatorIndex(ctx, user)
	if err != nil {
		return nil, err
	}

	listings := make([]ports.DepartmentListing, 0, len(departments))
	for _, d := range departments {
		listings = append(listings, ports.DepartmentListing{Department: d, Creator: creators[d.CreatedBy]})
	}
	return listings, nil
}

func (s *InventoryService) CreateDepartment(ctx context.Context, user *domain.AuthenticatedUser, input ports.CreateDepartmentInput) (*domain.Department, error) {
	decision := domain.Authorize(user, domain.ResourceDepartments, domain.ActionCreate)
	if !decision.Allow {
		return nil, domain.ErrForbidden
	}

	department := &domain.Department{
		ID:        uuid.NewString(),
		Name:      input.Name,
		CreatedBy: decision.ForcedCreator,
		CreatedAt: s.now(),
	}
	if err := s.departments.Insert(ctx, department); err != nil {
		return nil, err
	}

	s.log.Info().Str("department_id", department.ID).Str("name", department.Name).Str("created_by", department.CreatedBy).Msg("department created")
	return department, nil
}

func (s *InventoryService) ListAssets(ctx context.Context, user *domain.AuthenticatedUser) ([]ports.AssetListing, error) {
	decision := domain.Authorize(user, domain.ResourceAssets, domain.ActionRead)
	if !decision.Allow {
		return nil, domain.ErrForbidden
	}

	assets, err := s.assets.List(ctx, decision.Filter)
	if err != nil {
		return nil, err
	}
	return s.resolveAssetNames(ctx, assets)
}

func (s *InventoryService) CreateAsset(ctx context.Context, user *domain.AuthenticatedUser, input ports.CreateAssetInput) (*domain.Asset, error) {
	decision := domain.Authorize(user, domain.ResourceAssets, domain.ActionCreate)
	if !decision.Allow {
		return nil, domain.ErrForbidden
	}

	cost := input.Cost
	asset := &domain.Asset{
		ID:            uuid.NewString(),
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		DepartmentID:  input.DepartmentID,
		DatePurchased: input.DatePurchased,
		Cost:          &cost,
		CreatedBy:     decision.ForcedCreator,
		CreatedAt:     s.now(),
	}
	if err := s.assets.Insert(ctx, asset); err != nil {
		return nil, err
	}

	s.log.Info().Str("asset_id", asset.ID).Str("name", asset.Name).Str("created_by", asset.CreatedBy).Msg("asset created")
	return asset, nil
}

func (s *InventoryService) DeleteAsset(ctx context.Context, user *domain.AuthenticatedUser, id string) error {
	if !domain.Authorize(user, domain.ResourceAssets, domain.ActionDelete).Allow {
		return domain.ErrForbidden
	}
	if err := s.assets.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("asset_id", id).Str("deleted_by", user.ID).Msg("asset deleted")
	return nil
}

func (s *InventoryService) ListUsers(ctx context.Context, user *domain.AuthenticatedUser) ([]domain.User, error) {
	if !domain.Authorize(user, domain.ResourceUsers, domain.ActionRead).Allow {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}

// creatorIndex maps user ids to display references for admin listings.
// Non-admin callers may not read the users table, so they get an empty
// index and rows render without creator details.
func (s *InventoryService) creatorIndex(ctx context.Context, user *domain.AuthenticatedUser) (map[string]ports.CreatorRef, error) {
	index := make(map[string]ports.CreatorRef)
	if !domain.Authorize(user, domain.ResourceUsers, domain.ActionRead).Allow {
		return index, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		index[u.ID] = ports.CreatorRef{Name: u.Name, Email: u.Email}
	}
	return index, nil
}

// resolveAssetNames attaches category and department names to asset rows.
func (s *InventoryService) resolveAssetNames(ctx context.Context, assets []domain.Asset) ([]ports.AssetListing, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	departmentNames := make(map[string]string, len(departments))
	for _, d := range departments {
		departmentNames[d.ID] = d.Name
	}

	listings := make([]ports.AssetListing, 0, len(assets))
	for _, a := range assets {
		listings = append(listings, ports.AssetListing{
			Asset:          a,
			CategoryName:   categoryNames[a.CategoryID],
			DepartmentName: departmentNames[a.DepartmentID],
		})
	}
	return listings, nil
}
