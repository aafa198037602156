package integration

import (
	"net/http"
	"testing"

	"careernode_backend/internal/models"
	"careernode_backend/internal/services/dto"
	"careernode_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("returns the authenticated user", func(t *testing.T) {
		tx := ts.BeginTx(t)
		user, token := helpers.CreateAndLoginApplicant(t, tx, "profile@example.com")

		w := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/users/me", nil, token)
		helpers.RequireStatus(t, w, http.StatusOK)

		var resp dto.UserResponse
		helpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "profile@example.com", resp.Email)

		// /auth/me is the same profile
		w = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", nil, token)
		helpers.RequireStatus(t, w, http.StatusOK)
	})

	t.Run("requires authentication", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/users/me", nil, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginApplicant(t, tx, "patchme@example.com")

		w := ts.SendRequest(t, tx, http.MethodPatch, "/api/v1/users/me", map[string]interface{}{
			"first_name": "Renamed",
		}, token)
		helpers.RequireStatus(t, w, http.StatusOK)

		var resp dto.UserResponse
		helpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, "Renamed", resp.FirstName)
		assert.Equal(t, "patchme@example.com", resp.Email)
		assert.Equal(t, "User", resp.LastName)
	})

	t.Run("delete removes the account and its data", func(t *testing.T) {
		tx := ts.BeginTx(t)
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "cascade-emp@example.com")
		user, token := helpers.CreateAndLoginApplicant(t, tx, "deleteme@example.com")
		job := helpers.CreateJob(t, tx, employer.ID, "Applied To")
		helpers.CreateApplication(t, tx, job.ID, user.ID)

		w := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/users/me", nil, token)
		helpers.RequireStatus(t, w, http.StatusNoContent)

		var count int64
		require.NoError(t, tx.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, tx.Model(&models.Application{}).Where("applicant_id = ?", user.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestAdminUsers(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("admin lists users", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, adminToken := helpers.CreateAndLoginAdmin(t, tx, "list-admin@example.com")
		helpers.CreateUser(t, tx, "listed-1@example.com", models.UserRoleApplicant)
		helpers.CreateUser(t, tx, "listed-2@example.com", models.UserRoleEmployer)

		w := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/users", nil, adminToken)
		helpers.RequireStatus(t, w, http.StatusOK)

		var resp dto.UserListResponse
		helpers.DecodeJSON(t, w, &resp)
		assert.GreaterOrEqual(t, resp.Total, int64(3))
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginEmployer(t, tx, "list-emp2@example.com")

		w := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/users", nil, token)
		helpers.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("admin deletes a user with their jobs", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, adminToken := helpers.CreateAndLoginAdmin(t, tx, "del-admin@example.com")
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "del-target@example.com")
		helpers.CreateJob(t, tx, employer.ID, "Orphan Soon")

		w := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/users/"+employer.ID, nil, adminToken)
		helpers.RequireStatus(t, w, http.StatusNoContent)

		var count int64
		require.NoError(t, tx.Model(&models.Job{}).Where("employer_id = ?", employer.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("non-admin cannot delete others", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginApplicant(t, tx, "del-nonadmin@example.com")
		target := helpers.CreateUser(t, tx, "del-victim@example.com", models.UserRoleApplicant)

		w := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/users/"+target.ID, nil, token)
		helpers.RequireStatus(t, w, http.StatusForbidden)
	})
}

func TestHealth(t *testing.T) {
	ts := GetTestServer(t)

	tx := ts.BeginTx(t)
	w := ts.SendRequest(t, tx, http.MethodGet, "/health", nil, "")
	helpers.RequireStatus(t, w, http.StatusOK)
}
