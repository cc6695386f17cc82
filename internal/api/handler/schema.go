package handler

import (
	"time"

	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

// --- Request types ---

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type createDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type createAssetRequest struct {
	Name          string  `json:"name"           validate:"required,min=2"`
	CategoryID    string  `json:"category_id"    validate:"required"`
	DepartmentID  string  `json:"department_id"  validate:"required"`
	DatePurchased string  `json:"date_purchased" validate:"required"`
	Cost          float64 `json:"cost"           validate:"gte=0"`
}

// --- Response types, owned by the transport layer ---

type creatorResponse struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type categoryResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Creator   creatorResponse `json:"creator,omitempty"`
}

type departmentResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Creator   creatorResponse `json:"creator,omitempty"`
}

type assetResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Department    string    `json:"department"`
	DatePurchased string    `json:"date_purchased"`
	Cost          float64   `json:"cost"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// createdAssetResponse echoes the stored row back; names are resolved on
// listing pages, not here.
type createdAssetResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CategoryID    string    `json:"category_id"`
	DepartmentID  string    `json:"department_id"`
	DatePurchased string    `json:"date_purchased"`
	Cost          float64   `json:"cost"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type statsResponse struct {
	TotalAssets     int     `json:"total_assets"`
	TotalValue      float64 `json:"total_value"`
	AssetsThisMonth int     `json:"assets_this_month"`
	RecentActivity  int     `json:"recent_activity"`
	LastPurchase    string  `json:"last_purchase,omitempty"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Mappers ---

func toCategoryResponse(l ports.CategoryListing) categoryResponse {
	return categoryResponse{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		Creator:   creatorResponse{Name: l.Creator.Name, Email: l.Creator.Email},
	}
}

func toDepartmentResponse(l ports.DepartmentListing) departmentResponse {
	return departmentResponse{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		Creator:   creatorResponse{Name: l.Creator.Name, Email: l.Creator.Email},
	}
}

func toAssetResponse(l ports.AssetListing) assetResponse {
	return assetResponse{
		ID:            l.ID,
		Name:          l.Name,
		Category:      l.CategoryName,
		Department:    l.DepartmentName,
		DatePurchased: l.DatePurchased.Format("2006-01-02"),
		Cost:          l.CostValue(),
		CreatedBy:     l.CreatedBy,
		CreatedAt:     l.CreatedAt,
	}
}

func toCreatedAssetResponse(a domain.Asset) createdAssetResponse {
	return createdAssetResponse{
		ID:            a.ID,
		Name:          a.Name,
		CategoryID:    a.CategoryID,
		DepartmentID:  a.DepartmentID,
		DatePurchased: a.DatePurchased.Format("2006-01-02"),
		Cost:          a.CostValue(),
		CreatedBy:     a.CreatedBy,
		CreatedAt:     a.CreatedAt,
	}
}

func toStatsResponse(s domain.Stats) statsResponse {
	return statsResponse{
		TotalAssets:     s.TotalCount,
		TotalValue:      s.TotalValue,
		AssetsThisMonth: s.MonthToDateCount,
		RecentActivity:  s.Trailing7DayCount,
		LastPurchase:    s.LastPurchase(),
	}
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
