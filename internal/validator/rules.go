package validator

import (
	"log"

	"careernode_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum rules backed by statuses.go
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the 'required' rule's business
	}

	switch models.UserRole(value) {
	case models.UserRoleEmployer, models.UserRoleApplicant, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.JobType(value) {
	case models.JobTypeFullTime, models.JobTypeContract, models.JobTypeRemote:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
