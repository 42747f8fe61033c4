package models

import "time"

// Reservation is a row of reservations.
type Reservation struct {
	ReservationID string    `db:"reservation_id" gorm:"column:reservation_id;primaryKey"`
	RestaurantID  string    `db:"restaurant_id" gorm:"column:restaurant_id;index:idx_reservations_restaurant_time;not null"`
	SpaceID       string    `db:"space_id" gorm:"column:space_id;not null"`
	ClientID      *string   `db:"client_id" gorm:"column:client_id"`
	GuestCount    int       `db:"guest_count" gorm:"column:guest_count;not null"`
	ReservedFor   time.Time `db:"reserved_for" gorm:"column:reserved_for;index:idx_reservations_restaurant_time;not null"`
	Status        string    `db:"status" gorm:"column:status;index;not null"`
	Notes         string    `db:"notes" gorm:"column:notes;not null;default:''"`
	AuditFields
}

func (Reservation) TableName() string { return "reservations" }

// ReservationHistory is an append-only row of reservation_history.
type ReservationHistory struct {
	RecordID      string    `db:"record_id" gorm:"column:record_id;primaryKey"`
	ReservationID string    `db:"reservation_id" gorm:"column:reservation_id;index;not null"`
	RestaurantID  string    `db:"restaurant_id" gorm:"column:restaurant_id;not null"`
	FromStatus    *string   `db:"from_status" gorm:"column:from_status"`
	ToStatus      string    `db:"to_status" gorm:"column:to_status;not null"`
	Actor         string    `db:"actor" gorm:"column:actor;not null"`
	OccurredAt    time.Time `db:"occurred_at" gorm:"column:occurred_at;not null"`
}

func (ReservationHistory) TableName() string { return "reservation_history" }
