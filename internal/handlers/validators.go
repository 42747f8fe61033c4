package handlers

import (
	"fmt"
	"sync"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the enum validators used in binding tags on gin's validator engine.
func RegisterValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		for tag, fn := range map[string]validator.Func{
			"staff_role":         validateStaffRole,
			"salary_type":        validateSalaryType,
			"reservation_status": validateReservationStatus,
		} {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

func validateStaffRole(fl validator.FieldLevel) bool {
	return domain.StaffRole(fl.Field().String()).IsValid()
}

func validateSalaryType(fl validator.FieldLevel) bool {
	return domain.SalaryType(fl.Field().String()).IsValid()
}

// validateReservationStatus accepts only canonical spellings.
func validateReservationStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParseReservationStatus(fl.Field().String())
	return err == nil
}
