package models

import "time"

// Schedule is a row of schedules. A non-null deletion_notice marks a cancelled shift.
type Schedule struct {
	ScheduleID     string     `db:"schedule_id" gorm:"column:schedule_id;primaryKey"`
	StaffID        string     `db:"staff_id" gorm:"column:staff_id;index:idx_schedules_staff_date;not null"`
	RestaurantID   string     `db:"restaurant_id" gorm:"column:restaurant_id;index;not null"`
	Date           time.Time  `db:"shift_date" gorm:"column:shift_date;index:idx_schedules_staff_date;not null"`
	StartTime      time.Time  `db:"start_time" gorm:"column:start_time;not null"`
	EndTime        time.Time  `db:"end_time" gorm:"column:end_time;not null"`
	CheckinTime    *time.Time `db:"checkin_time" gorm:"column:checkin_time"`
	CheckoutTime   *time.Time `db:"checkout_time" gorm:"column:checkout_time"`
	DeletionNotice *string    `db:"deletion_notice" gorm:"column:deletion_notice"`
	AuditFields
}

func (Schedule) TableName() string { return "schedules" }
