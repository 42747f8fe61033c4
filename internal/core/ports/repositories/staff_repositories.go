package repositories

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// StaffReader defines read operations for staff members
type StaffReader interface {
	// FindStaffByID returns apperrors.ErrNotFound when the staff member does not exist.
	FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error)
}

// StaffWriter defines write operations for staff members
type StaffWriter interface {
	// SaveStaff persists a new staff member.
	SaveStaff(ctx context.Context, staff domain.StaffMember) error

	// UpdateCurrentSchedule swaps the current schedule pointer if the stored version still equals expectedVersion.
	// A nil scheduleID clears the pointer. Returns apperrors.ErrConflict on a stale version.
	UpdateCurrentSchedule(ctx context.Context, staffID string, scheduleID *string, actor string, expectedVersion int64) error
}

// StaffRepositoryFacade combines all staff repository interfaces
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
