package models

import "github.com/shopspring/decimal"

// StaffMember is a row of staff_members.
type StaffMember struct {
	StaffID           string          `db:"staff_id" gorm:"column:staff_id;primaryKey"`
	RestaurantID      string          `db:"restaurant_id" gorm:"column:restaurant_id;index;not null"`
	UserID            string          `db:"user_id" gorm:"column:user_id;not null"`
	FullName          string          `db:"full_name" gorm:"column:full_name;not null"`
	Role              string          `db:"role" gorm:"column:role;not null"`
	SalaryType        string          `db:"salary_type" gorm:"column:salary_type;not null"`
	Salary            decimal.Decimal `db:"salary" gorm:"column:salary;type:numeric(12,2);not null"`
	Currency          string          `db:"currency" gorm:"column:currency;size:3;not null"`
	CurrentScheduleID *string         `db:"current_schedule_id" gorm:"column:current_schedule_id"`
	AuditFields
}

func (StaffMember) TableName() string { return "staff_members" }
