package ports

import (
	"context"
	"time"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// CreatorRef is the resolved creator of a row, shown on admin listings.
type CreatorRef struct {
	Name  string
	Email string
}

// CategoryListing is a category with its creator resolved.
type CategoryListing struct {
	domain.Category
	Creator CreatorRef
}

// DepartmentListing is a department with its creator resolved.
type DepartmentListing struct {
	domain.Department
	Creator CreatorRef
}

// AssetListing is an asset with its category and department names resolved.
type AssetListing struct {
	domain.Asset
	CategoryName   string
	DepartmentName string
}

// CreateCategoryInput / CreateDepartmentInput carry a validated name; the
// creator comes from the caller, never the request body.
type CreateCategoryInput struct {
	Name string
}

type CreateDepartmentInput struct {
	Name string
}

// CreateAssetInput carries a validated asset. Cost is required on new
// assets; only legacy rows may lack one.
type CreateAssetInput struct {
	Name          string
	CategoryID    string
	DepartmentID  string
	DatePurchased time.Time
	Cost          float64
}

// InventoryService implements the role-gated CRUD operations over the four
// tables. Every method checks the access policy for the calling user before
// touching the store and applies the policy's row filter to reads.
type InventoryService interface {
	ListCategories(ctx context.Context, user *domain.AuthenticatedUser) ([]CategoryListing, error)
	CreateCategory(ctx context.Context, user *domain.AuthenticatedUser, input CreateCategoryInput) (*domain.Category, error)

	ListDepartments(ctx context.Context, user *domain.AuthenticatedUser) ([]DepartmentListing, error)
	CreateDepartment(ctx context.Context, user *domain.AuthenticatedUser, input CreateDepartmentInput) (*domain.Department, error)

	ListAssets(ctx context.Context, user *domain.AuthenticatedUser) ([]AssetListing, error)
	CreateAsset(ctx context.Context, user *domain.AuthenticatedUser, input CreateAssetInput) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, user *domain.AuthenticatedUser, id string) error

	ListUsers(ctx context.Context, user *domain.AuthenticatedUser) ([]domain.User, error)
}
