package ports

import (
	"context"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// CategoryRepository persists category rows. Insert surfaces
// domain.ErrCategoryExists on a unique-name violation.
type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) error
	// List returns all categories ordered by created_at descending.
	List(ctx context.Context) ([]domain.Category, error)
}

// DepartmentRepository persists department rows. Insert surfaces
// domain.ErrDepartmentExists on a unique-name violation.
type DepartmentRepository interface {
	Insert(ctx context.Context, department *domain.Department) error
	// List returns all departments ordered by created_at descending.
	List(ctx context.Context) ([]domain.Department, error)
}

// AssetRepository persists asset rows. Reads are parameterized by the
// access policy's row filter; each mutation is a single-row operation.
type AssetRepository interface {
	Insert(ctx context.Context, asset *domain.Asset) error
	// List returns assets matching filter ordered by created_at descending.
	// An unrestricted filter returns every row.
	List(ctx context.Context, filter domain.RowFilter) ([]domain.Asset, error)
	// Delete removes one asset by id, returning domain.ErrAssetNotFound when
	// no row matched.
	Delete(ctx context.Context, id string) error
}
