package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

type stubCategoryRepo struct {
	rows      []domain.Category
	insertErr error
	listErr   error
}

func (r *stubCategoryRepo) Insert(_ context.Context, c *domain.Category) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, existing := range r.rows {
		if existing.Name == c.Name {
			return domain.ErrCategoryExists
		}
	}
	r.rows = append(r.rows, *c)
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	rows := append([]domain.Category(nil), r.rows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

type stubDepartmentRepo struct {
	rows []domain.Department
}

func (r *stubDepartmentRepo) Insert(_ context.Context, d *domain.Department) error {
	for _, existing := range r.rows {
		if existing.Name == d.Name {
			return domain.ErrDepartmentExists
		}
	}
	r.rows = append(r.rows, *d)
	return nil
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	rows := append([]domain.Department(nil), r.rows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

type stubAssetRepo struct {
	rows       []domain.Asset
	lastFilter domain.RowFilter
	listErr    error
}

func (r *stubAssetRepo) Insert(_ context.Context, a *domain.Asset) error {
	r.rows = append(r.rows, *a)
	return nil
}

// List applies the same scoping the real Mongo repo would.
func (r *stubAssetRepo) List(_ context.Context, filter domain.RowFilter) ([]domain.Asset, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.lastFilter = filter
	var rows []domain.Asset
	for _, a := range r.rows {
		if !filter.Unrestricted() && a.CreatedBy != filter.CreatedBy {
			continue
		}
		rows = append(rows, a)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (r *stubAssetRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.rows {
		if a.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrAssetNotFound
}

func newInventoryService(users *stubUserRepo, categories *stubCategoryRepo, departments *stubDepartmentRepo, assets *stubAssetRepo) *InventoryService {
	return NewInventoryService(users, categories, departments, assets, zerolog.Nop())
}

func TestCreateCategory_DuplicateNameSurfacesExists(t *testing.T) {
	categories := &stubCategoryRepo{}
	svc := newInventoryService(newStubUserRepo(), categories, &stubDepartmentRepo{}, &stubAssetRepo{})
	user := &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser}

	if _, err := svc.CreateCategory(context.Background(), user, ports.CreateCategoryInput{Name: "Laptops"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateCategory(context.Background(), user, ports.CreateCategoryInput{Name: "Laptops"})
	if !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCreateCategory_DistinctNameAppearsInDescendingListing(t *testing.T) {
	categories := &stubCategoryRepo{}
	svc := newInventoryService(newStubUserRepo(), categories, &stubDepartmentRepo{}, &stubAssetRepo{})
	user := &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser}

	first, err := svc.CreateCategory(context.Background(), user, ports.CreateCategoryInput{Name: "Laptops"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Force distinct creation instants so ordering is observable.
	categories.rows[0].CreatedAt = first.CreatedAt.Add(-time.Minute)

	if _, err := svc.CreateCategory(context.Background(), user, ports.CreateCategoryInput{Name: "Monitors"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	listings, err := svc.ListCategories(context.Background(), user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(listings))
	}
	if listings[0].Name != "Monitors" {
		t.Fatalf("newest category should list first, got %q", listings[0].Name)
	}
}

func TestCreateCategory_CreatorForcedToCaller(t *testing.T) {
	categories := &stubCategoryRepo{}
	svc := newInventoryService(newStubUserRepo(), categories, &stubDepartmentRepo{}, &stubAssetRepo{})

	created, err := svc.CreateCategory(context.Background(), &domain.AuthenticatedUser{ID: "u7", Role: domain.RoleUser}, ports.CreateCategoryInput{Name: "Phones"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CreatedBy != "u7" {
		t.Fatalf("creator should be the caller, got %q", created.CreatedBy)
	}
	if created.ID == "" {
		t.Fatalf("category should get an id")
	}
}

func TestListCategories_CreatorResolvedForAdminsOnly(t *testing.T) {
	users := newStubUserRepo()
	users.byID["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "a@example.com", Role: domain.RoleUser}
	categories := &stubCategoryRepo{rows: []domain.Category{{ID: "c1", Name: "Laptops", CreatedBy: "u1"}}}
	svc := newInventoryService(users, categories, &stubDepartmentRepo{}, &stubAssetRepo{})

	adminView, err := svc.ListCategories(context.Background(), &domain.AuthenticatedUser{ID: "adm", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if adminView[0].Creator.Name != "Alice" {
		t.Fatalf("admin listing should resolve creators, got %+v", adminView[0].Creator)
	}

	userView, err := svc.ListCategories(context.Background(), &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	if userView[0].Creator.Name != "" {
		t.Fatalf("user listing should not resolve creators, got %+v", userView[0].Creator)
	}
}

func TestCreateDepartment_Duplicate(t *testing.T) {
	svc := newInventoryService(newStubUserRepo(), &stubCategoryRepo{}, &stubDepartmentRepo{}, &stubAssetRepo{})
	user := &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser}

	if _, err := svc.CreateDepartment(context.Background(), user, ports.CreateDepartmentInput{Name: "Finance"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateDepartment(context.Background(), user, ports.CreateDepartmentInput{Name: "Finance"})
	if !errors.Is(err, domain.ErrDepartmentExists) {
		t.Fatalf("expected ErrDepartmentExists, got %v", err)
	}
}

func TestListAssets_UserScopedAdminUnrestricted(t *testing.T) {
	assets := &stubAssetRepo{rows: []domain.Asset{
		{ID: "a1", CreatedBy: "u1"},
		{ID: "a2", CreatedBy: "u2"},
	}}
	svc := newInventoryService(newStubUserRepo(), &stubCategoryRepo{}, &stubDepartmentRepo{}, assets)

	mine, err := svc.ListAssets(context.Background(), &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "a1" {
		t.Fatalf("user should see only own rows, got %+v", mine)
	}
	if assets.lastFilter.CreatedBy != "u1" {
		t.Fatalf("repository should receive the identity filter, got %+v", assets.lastFilter)
	}

	all, err := svc.ListAssets(context.Background(), &domain.AuthenticatedUser{ID: "adm", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see all rows, got %d", len(all))
	}
	if !assets.lastFilter.Unrestricted() {
		t.Fatalf("admin filter should be unrestricted, got %+v", assets.lastFilter)
	}
}

func TestListAssets_ResolvesCategoryAndDepartmentNames(t *testing.T) {
	assets := &stubAssetRepo{rows: []domain.Asset{{ID: "a1", CategoryID: "c1", DepartmentID: "d1", CreatedBy: "u1"}}}
	categories := &stubCategoryRepo{rows: []domain.Category{{ID: "c1", Name: "Laptops"}}}
	departments := &stubDepartmentRepo{rows: []domain.Department{{ID: "d1", Name: "Finance"}}}
	svc := newInventoryService(newStubUserRepo(), categories, departments, assets)

	listings, err := svc.ListAssets(context.Background(), &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if listings[0].CategoryName != "Laptops" || listings[0].DepartmentName != "Finance" {
		t.Fatalf("names not resolved: %+v", listings[0])
	}
}

func TestCreateAsset_CreatorForcedToSelf(t *testing.T) {
	assets := &stubAssetRepo{}
	svc := newInventoryService(newStubUserRepo(), &stubCategoryRepo{}, &stubDepartmentRepo{}, assets)

	created, err := svc.CreateAsset(context.Background(), &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser}, ports.CreateAssetInput{
		Name:          "MacBook Pro",
		CategoryID:    "c1",
		DepartmentID:  "d1",
		DatePurchased: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Cost:          1999.99,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CreatedBy != "u1" {
		t.Fatalf("creator should be forced to the caller, got %q", created.CreatedBy)
	}
	if created.CostValue() != 1999.99 {
		t.Fatalf("cost not carried: %v", created.Cost)
	}
}

func TestDeleteAsset_AdminOnly(t *testing.T) {
	assets := &stubAssetRepo{rows: []domain.Asset{{ID: "a1", CreatedBy: "u1"}}}
	svc := newInventoryService(newStubUserRepo(), &stubCategoryRepo{}, &stubDepartmentRepo{}, assets)

	err := svc.DeleteAsset(context.Background(), &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser}, "a1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("user delete should be forbidden, got %v", err)
	}

	if err := svc.DeleteAsset(context.Background(), &domain.AuthenticatedUser{ID: "adm", Role: domain.RoleAdmin}, "a1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(assets.rows) != 0 {
		t.Fatalf("row should be gone")
	}

	err = svc.DeleteAsset(context.Background(), &domain.AuthenticatedUser{ID: "adm", Role: domain.RoleAdmin}, "a1")
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListUsers_DeniedForUserRole(t *testing.T) {
	svc := newInventoryService(newStubUserRepo(), &stubCategoryRepo{}, &stubDepartmentRepo{}, &stubAssetRepo{})

	_, err := svc.ListUsers(context.Background(), &domain.AuthenticatedUser{ID: "u1", Role: domain.RoleUser})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
