package handlers

import (
	"careernode_backend/internal/services"
	"careernode_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration
type AppHandlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Category    *CategoryHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, svc.AuthService),
		User:        NewUserHandler(base, svc.UserService),
		Job:         NewJobHandler(base, svc.JobService),
		Application: NewApplicationHandler(base, svc.ApplicationService),
		Category:    NewCategoryHandler(base, svc.CategoryService),
	}
}
