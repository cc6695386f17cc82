package domain

import (
	"errors"
	"time"
)

var ErrCategoryExists = errors.New("category already exists")
var ErrDepartmentExists = errors.New("department already exists")
var ErrAssetNotFound = errors.New("asset not found")

// Category groups assets by kind (e.g. "Laptops"). Names are unique
// system-wide; the store enforces the constraint.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Department groups assets by organisational unit. Names are unique.
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Asset is a purchased item recorded by a user. CreatedBy is set once at
// insert time and determines visibility under the access policy.
//
// Cost is a pointer because the store permits null costs on legacy rows;
// aggregation treats a missing cost as zero.
type Asset struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CategoryID    string    `json:"category_id"`
	DepartmentID  string    `json:"department_id"`
	DatePurchased time.Time `json:"date_purchased"`
	Cost          *float64  `json:"cost"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// CostValue returns the asset's cost, treating a missing cost as 0.
func (a Asset) CostValue() float64 {
	if a.Cost == nil {
		return 0
	}
	return *a.Cost
}
