package validator

import (
	"testing"

	"careernode_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	t.Run("valid payload passes", func(t *testing.T) {
		err := v.Validate(&dto.RegisterRequest{
			Email:     "user@example.com",
			Password:  "password123",
			FirstName: "User",
			Role:      "applicant",
		})
		assert.NoError(t, err)
	})

	t.Run("reports fields by json name", func(t *testing.T) {
		err := v.Validate(&dto.RegisterRequest{
			Email:    "not-an-email",
			Password: "short",
			Role:     "applicant",
		})
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "email")
		assert.Contains(t, ve.Errors, "password")
		assert.Contains(t, ve.Errors, "first_name")
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		err := v.Validate(&dto.RegisterRequest{
			Email:     "user@example.com",
			Password:  "password123",
			FirstName: "User",
			Role:      "superuser",
		})
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "role")
	})
}

func TestValidateJobRequests(t *testing.T) {
	v := New()

	t.Run("job type enum", func(t *testing.T) {
		err := v.Validate(&dto.CreateJobRequest{
			Title:    "Some Job",
			Location: "Remote",
			JobType:  "part_time",
		})
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "job_type")
	})

	t.Run("empty job type is allowed", func(t *testing.T) {
		err := v.Validate(&dto.CreateJobRequest{
			Title:    "Some Job",
			Location: "Remote",
		})
		assert.NoError(t, err)
	})

	t.Run("title bounds", func(t *testing.T) {
		err := v.Validate(&dto.CreateJobRequest{
			Title:    "ab",
			Location: "Remote",
		})
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "title")
	})

	t.Run("category must be a uuid", func(t *testing.T) {
		bad := "not-a-uuid"
		err := v.Validate(&dto.CreateJobRequest{
			Title:      "Some Job",
			Location:   "Remote",
			CategoryID: &bad,
		})
		require.Error(t, err)
	})
}

func TestValidateApplicationRequest(t *testing.T) {
	v := New()

	t.Run("resume is required", func(t *testing.T) {
		err := v.Validate(&dto.CreateApplicationRequest{
			JobID: "7f6cb35e-93e1-4a4a-9a2f-6a1b0a9f7e11",
		})
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "resume")
	})

	t.Run("valid payload passes", func(t *testing.T) {
		err := v.Validate(&dto.CreateApplicationRequest{
			JobID:  "7f6cb35e-93e1-4a4a-9a2f-6a1b0a9f7e11",
			Resume: "https://example.com/cv.pdf",
		})
		assert.NoError(t, err)
	})
}
