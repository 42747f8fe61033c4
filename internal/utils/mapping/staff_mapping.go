package mapping

import (
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
)

// ToModelStaffMember converts a domain StaffMember to a model StaffMember
func ToModelStaffMember(d domain.StaffMember) models.StaffMember {
	return models.StaffMember{
		StaffID:           d.StaffID,
		RestaurantID:      d.RestaurantID,
		UserID:            d.UserID,
		FullName:          d.FullName,
		Role:              string(d.Role),
		SalaryType:        string(d.SalaryType),
		Salary:            d.Salary,
		Currency:          d.Currency,
		CurrentScheduleID: d.CurrentScheduleID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStaffMember converts a model StaffMember to a domain StaffMember
func ToDomainStaffMember(m models.StaffMember) domain.StaffMember {
	return domain.StaffMember{
		StaffID:           m.StaffID,
		RestaurantID:      m.RestaurantID,
		UserID:            m.UserID,
		FullName:          m.FullName,
		Role:              domain.StaffRole(m.Role),
		SalaryType:        domain.SalaryType(m.SalaryType),
		Salary:            m.Salary,
		Currency:          m.Currency,
		CurrentScheduleID: m.CurrentScheduleID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
