package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of orders. Only the columns read by reports are mapped.
type Order struct {
	OrderID       string          `db:"order_id" gorm:"column:order_id;primaryKey"`
	RestaurantID  string          `db:"restaurant_id" gorm:"column:restaurant_id;index;not null"`
	SpaceID       string          `db:"space_id" gorm:"column:space_id;not null"`
	ReservationID *string         `db:"reservation_id" gorm:"column:reservation_id"`
	Status        string          `db:"status" gorm:"column:status;not null"`
	Total         decimal.Decimal `db:"total" gorm:"column:total;type:numeric(12,2);not null"`
	ClosedAt      *time.Time      `db:"closed_at" gorm:"column:closed_at;index"`
}

func (Order) TableName() string { return "orders" }

// Review is a row of reviews.
type Review struct {
	ReviewID      string    `db:"review_id" gorm:"column:review_id;primaryKey"`
	RestaurantID  string    `db:"restaurant_id" gorm:"column:restaurant_id;index;not null"`
	ReservationID *string   `db:"reservation_id" gorm:"column:reservation_id"`
	Food          int       `db:"food" gorm:"column:food;not null"`
	Service       int       `db:"service" gorm:"column:service;not null"`
	Price         int       `db:"price" gorm:"column:price;not null"`
	Ambience      int       `db:"ambience" gorm:"column:ambience;not null"`
	CreatedAt     time.Time `db:"created_at" gorm:"column:created_at;index;not null"`
}

func (Review) TableName() string { return "reviews" }
