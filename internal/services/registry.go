package services

// ServiceContainer bundles every service for handler construction
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	JobService         JobService
	ApplicationService ApplicationService
	CategoryService    CategoryService
}
