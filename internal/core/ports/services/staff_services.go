package services

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
)

// StaffReaderSvc defines read operations for staff members
type StaffReaderSvc interface {
	GetStaffMember(ctx context.Context, staffID string) (*domain.StaffMember, error)
}

// StaffWriterSvc defines write operations for staff members
type StaffWriterSvc interface {
	CreateStaffMember(ctx context.Context, restaurantID string, req dto.CreateStaffRequest, actor string) (*domain.StaffMember, error)
}

// StaffSvcFacade combines all staff service interfaces
type StaffSvcFacade interface {
	StaffReaderSvc
	StaffWriterSvc
}
