package domain

import (
	"github.com/shopspring/decimal"
)

// StaffRole is the job a staff member holds in a restaurant.
type StaffRole string

const (
	RoleAdmin     StaffRole = "ADMIN"
	RoleManager   StaffRole = "MANAGER"
	RoleHostess   StaffRole = "HOSTESS"
	RoleWaiter    StaffRole = "WAITER"
	RoleBartender StaffRole = "BARTENDER"
	RoleChef      StaffRole = "CHEF"
	RoleCook      StaffRole = "COOK"
	RoleCleaner   StaffRole = "CLEANER"
	RoleOperator  StaffRole = "OPERATOR"
)

var staffRoles = map[StaffRole]struct{}{
	RoleAdmin: {}, RoleManager: {}, RoleHostess: {}, RoleWaiter: {}, RoleBartender: {},
	RoleChef: {}, RoleCook: {}, RoleCleaner: {}, RoleOperator: {},
}

// IsValid reports whether r is one of the known roles.
func (r StaffRole) IsValid() bool {
	_, ok := staffRoles[r]
	return ok
}

// SalaryType says how a staff member is paid.
type SalaryType string

const (
	SalaryMonthly SalaryType = "MONTHLY"
	SalaryHourly  SalaryType = "HOURLY"
)

// IsValid reports whether t is MONTHLY or HOURLY.
func (t SalaryType) IsValid() bool {
	return t == SalaryMonthly || t == SalaryHourly
}

// StaffMember is an employee of a restaurant.
// CurrentScheduleID is a weak reference: the schedule it names lives independently.
type StaffMember struct {
	StaffID           string          `json:"staffID"`
	RestaurantID      string          `json:"restaurantID"`
	UserID            string          `json:"userID"`
	FullName          string          `json:"fullName"`
	Role              StaffRole       `json:"role"`
	SalaryType        SalaryType      `json:"salaryType"`
	Salary            decimal.Decimal `json:"salary"`
	Currency          string          `json:"currency"`
	CurrentScheduleID *string         `json:"currentScheduleID,omitempty"`
	AuditFields
}

// IsClockedInto reports whether scheduleID is this member's current schedule.
func (s *StaffMember) IsClockedInto(scheduleID string) bool {
	return s.CurrentScheduleID != nil && *s.CurrentScheduleID == scheduleID
}
