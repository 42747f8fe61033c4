package dto

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest defines the data needed to hire a staff member.
type CreateStaffRequest struct {
	UserID     string            `json:"userID" binding:"required"`
	FullName   string            `json:"fullName" binding:"required"`
	Role       domain.StaffRole  `json:"role" binding:"required,staff_role"`
	SalaryType domain.SalaryType `json:"salaryType" binding:"required,salary_type"`
	Salary     decimal.Decimal   `json:"salary"`
	Currency   string            `json:"currency" binding:"required,iso4217"`
}

// StaffResponse defines the data returned for a staff member.
type StaffResponse struct {
	StaffID           string            `json:"staffID"`
	RestaurantID      string            `json:"restaurantID"`
	UserID            string            `json:"userID"`
	FullName          string            `json:"fullName"`
	Role              domain.StaffRole  `json:"role"`
	SalaryType        domain.SalaryType `json:"salaryType"`
	Salary            decimal.Decimal   `json:"salary"`
	Currency          string            `json:"currency"`
	CurrentScheduleID *string           `json:"currentScheduleID"`
	CreatedAt         time.Time         `json:"createdAt"`
	LastUpdatedAt     time.Time         `json:"lastUpdatedAt"`
	Version           int64             `json:"version"`
}

// ToStaffResponse converts a domain.StaffMember to StaffResponse DTO
func ToStaffResponse(s *domain.StaffMember) StaffResponse {
	return StaffResponse{
		StaffID:           s.StaffID,
		RestaurantID:      s.RestaurantID,
		UserID:            s.UserID,
		FullName:          s.FullName,
		Role:              s.Role,
		SalaryType:        s.SalaryType,
		Salary:            s.Salary,
		Currency:          s.Currency,
		CurrentScheduleID: s.CurrentScheduleID,
		CreatedAt:         s.CreatedAt,
		LastUpdatedAt:     s.LastUpdatedAt,
		Version:           s.Version,
	}
}
