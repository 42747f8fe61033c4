package services

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
)

// ReservationReaderSvc defines read operations for reservations
type ReservationReaderSvc interface {
	GetReservation(ctx context.Context, reservationID string) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter domain.ReservationFilter, limit int, nextToken *string) ([]domain.Reservation, *string, error)
	GetHistory(ctx context.Context, reservationID string) ([]domain.ReservationHistoryRecord, error)
}

// ReservationWriterSvc defines the reservation lifecycle operations
type ReservationWriterSvc interface {
	// CreateReservation stores a reservation in PENDING or PENDING_PREORDER.
	CreateReservation(ctx context.Context, restaurantID string, req dto.CreateReservationRequest, actor string) (*domain.Reservation, error)

	// Transition moves a reservation along an allowed edge and records it in the history log.
	Transition(ctx context.Context, reservationID string, target domain.ReservationStatus, actor string) (*domain.Reservation, error)

	// MarkDishonoredOnNoShow dishonors a confirmed reservation once now reaches cutoff.
	// It reports false, without error, when the reservation is not eligible.
	MarkDishonoredOnNoShow(ctx context.Context, reservationID string, cutoff, now time.Time) (bool, error)
}

// ReservationSvcFacade combines all reservation service interfaces
type ReservationSvcFacade interface {
	ReservationReaderSvc
	ReservationWriterSvc
}

// SweepResult summarises one no-show sweep run.
type SweepResult struct {
	Scanned    int `json:"scanned"`
	Dishonored int `json:"dishonored"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// NoShowSweeperSvc dishonors confirmed reservations whose guests never arrived.
type NoShowSweeperSvc interface {
	RunOnce(ctx context.Context) (SweepResult, error)
}
