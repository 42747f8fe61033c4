package services_test

import (
	"context"
	"testing"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/ports"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validStaffRequest() dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		UserID:     "user-7",
		FullName:   "  Ana Popescu ",
		Role:       domain.RoleWaiter,
		SalaryType: domain.SalaryHourly,
		Salary:     decimal.RequireFromString("85.50"),
		Currency:   "mdl",
	}
}

func TestStaffService_CreateStaffMember(t *testing.T) {
	repo := new(MockStaffRepository)
	svc := services.NewStaffService(repo, services.WithClock(ports.FixedClock{At: dinner}))

	repo.On("SaveStaff", mock.Anything, mock.MatchedBy(func(s domain.StaffMember) bool {
		return s.FullName == "Ana Popescu" && s.Currency == "MDL" && s.RestaurantID == "rest-1"
	})).Return(nil).Once()

	member, err := svc.CreateStaffMember(context.Background(), "rest-1", validStaffRequest(), "manager-1")

	require.NoError(t, err)
	assert.NotEmpty(t, member.StaffID)
	assert.Nil(t, member.CurrentScheduleID)
	assert.Equal(t, int64(1), member.Version)
	assert.Equal(t, dinner, member.CreatedAt)
	repo.AssertExpectations(t)
}

func TestStaffService_CreateStaffMember_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateStaffRequest)
	}{
		{"blank name", func(r *dto.CreateStaffRequest) { r.FullName = "  " }},
		{"unknown role", func(r *dto.CreateStaffRequest) { r.Role = "JANITOR" }},
		{"unknown salary type", func(r *dto.CreateStaffRequest) { r.SalaryType = "WEEKLY" }},
		{"negative salary", func(r *dto.CreateStaffRequest) { r.Salary = decimal.NewFromInt(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockStaffRepository)
			svc := services.NewStaffService(repo)
			req := validStaffRequest()
			tt.mutate(&req)

			_, err := svc.CreateStaffMember(context.Background(), "rest-1", req, "manager-1")

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			repo.AssertNotCalled(t, "SaveStaff", mock.Anything, mock.Anything)
		})
	}
}

func TestStaffService_GetStaffMember_NotFound(t *testing.T) {
	repo := new(MockStaffRepository)
	svc := services.NewStaffService(repo)
	repo.On("FindStaffByID", mock.Anything, "ghost").Return(nil, apperrors.NewNotFoundError("staff member not found")).Once()

	_, err := svc.GetStaffMember(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNumberOfCalls(t, "FindStaffByID", 1)
}
