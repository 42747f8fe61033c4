package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/google/uuid"
)

type staffService struct {
	BaseService
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade, options ...ServiceOption) portssvc.StaffSvcFacade {
	return &staffService{
		BaseService: newBaseService(options...),
		staffRepo:   staffRepo,
	}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) CreateStaffMember(ctx context.Context, restaurantID string, req dto.CreateStaffRequest, actor string) (*domain.StaffMember, error) {
	if strings.TrimSpace(restaurantID) == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.NewValidationFailedError("restaurant and full name are required")
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown staff role: " + string(req.Role))
	}
	if !req.SalaryType.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown salary type: " + string(req.SalaryType))
	}
	if req.Salary.IsNegative() {
		return nil, apperrors.NewValidationFailedError("salary must not be negative")
	}

	member := domain.StaffMember{
		StaffID:      uuid.NewString(),
		RestaurantID: restaurantID,
		UserID:       req.UserID,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         req.Role,
		SalaryType:   req.SalaryType,
		Salary:       req.Salary,
		Currency:     strings.ToUpper(req.Currency),
		AuditFields:  domain.NewAuditFields(actor, s.now()),
	}

	callCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()
	if err := storeError(s.staffRepo.SaveStaff(callCtx, member)); err != nil {
		s.logFailure(ctx, err, "Failed to save staff member", slog.String("restaurant_id", restaurantID))
		return nil, err
	}

	s.LogInfo(ctx, "Staff member created", slog.String("staff_id", member.StaffID), slog.String("role", string(member.Role)))
	return &member, nil
}

func (s *staffService) GetStaffMember(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	member, err := readWithRetry(ctx, &s.BaseService, "get_staff", func(ctx context.Context) (*domain.StaffMember, error) {
		return s.staffRepo.FindStaffByID(ctx, staffID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to get staff member", slog.String("staff_id", staffID))
		return nil, err
	}
	return member, nil
}
