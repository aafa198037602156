package helpers

import (
	"testing"

	"careernode_backend/internal/auth"
	"careernode_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DefaultPassword is the password every fixture user gets
const DefaultPassword = "password123"

// CreateUser inserts a user directly, bypassing the registration endpoint
func CreateUser(t *testing.T, tx *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, tx.Create(user).Error)
	return user
}

// TokenFor issues an access token for the user without going through login
func TokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	require.NoError(t, err)
	return token
}

// CreateAndLoginUser is the common fixture: a user plus a valid token
func CreateAndLoginUser(t *testing.T, tx *gorm.DB, email string, role models.UserRole) (*models.User, string) {
	t.Helper()

	user := CreateUser(t, tx, email, role)
	return user, TokenFor(t, user)
}

func CreateAndLoginEmployer(t *testing.T, tx *gorm.DB, email string) (*models.User, string) {
	t.Helper()
	return CreateAndLoginUser(t, tx, email, models.UserRoleEmployer)
}

func CreateAndLoginApplicant(t *testing.T, tx *gorm.DB, email string) (*models.User, string) {
	t.Helper()
	return CreateAndLoginUser(t, tx, email, models.UserRoleApplicant)
}

func CreateAndLoginAdmin(t *testing.T, tx *gorm.DB, email string) (*models.User, string) {
	t.Helper()
	return CreateAndLoginUser(t, tx, email, models.UserRoleAdmin)
}

// CreateCategory inserts a category directly
func CreateCategory(t *testing.T, tx *gorm.DB, name, slug string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Slug: slug}
	require.NoError(t, tx.Create(category).Error)
	return category
}

// CreateJob inserts an active job owned by the employer
func CreateJob(t *testing.T, tx *gorm.DB, employerID, title string, mutate ...func(*models.Job)) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID: employerID,
		Title:      title,
		Location:   "Remote",
		JobType:    models.JobTypeFullTime,
		IsActive:   true,
	}
	for _, fn := range mutate {
		fn(job)
	}
	require.NoError(t, tx.Create(job).Error)
	return job
}

// CreateApplication inserts an application directly
func CreateApplication(t *testing.T, tx *gorm.DB, jobID, applicantID string) *models.Application {
	t.Helper()

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Resume:      "https://example.com/resume.pdf",
		Status:      models.ApplicationStatusPending,
	}
	require.NoError(t, tx.Create(application).Error)
	return application
}
