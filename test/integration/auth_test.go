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

func TestRegister(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("creates applicant account", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
			"email":      "newuser@example.com",
			"password":   "password123",
			"first_name": "New",
			"role":       "applicant",
		}, "")

		helpers.RequireStatus(t, w, http.StatusCreated)

		var user dto.UserResponse
		helpers.DecodeJSON(t, w, &user)
		assert.Equal(t, "newuser@example.com", user.Email)
		assert.Equal(t, models.UserRoleApplicant, user.Role)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("rejects admin role", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
			"email":      "sneaky@example.com",
			"password":   "password123",
			"first_name": "Sneaky",
			"role":       "admin",
		}, "")

		helpers.RequireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects short password", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
			"email":      "short@example.com",
			"password":   "short",
			"first_name": "Short",
			"role":       "applicant",
		}, "")

		helpers.RequireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		tx := ts.BeginTx(t)
		helpers.CreateUser(t, tx, "taken@example.com", models.UserRoleApplicant)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
			"email":      "taken@example.com",
			"password":   "password123",
			"first_name": "Dup",
			"role":       "applicant",
		}, "")

		helpers.RequireStatus(t, w, http.StatusBadRequest)
	})
}

func TestLogin(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("returns token pair for valid credentials", func(t *testing.T) {
		tx := ts.BeginTx(t)
		user := helpers.CreateUser(t, tx, "login@example.com", models.UserRoleEmployer)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"email":    "login@example.com",
			"password": helpers.DefaultPassword,
		}, "")

		helpers.RequireStatus(t, w, http.StatusOK)

		var resp dto.LoginResponse
		helpers.DecodeJSON(t, w, &resp)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, user.ID, resp.User.UserID)
		assert.Equal(t, models.UserRoleEmployer, resp.User.Role)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		tx := ts.BeginTx(t)
		helpers.CreateUser(t, tx, "wrongpw@example.com", models.UserRoleApplicant)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"email":    "wrongpw@example.com",
			"password": "not-the-password",
		}, "")

		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "password123",
		}, "")

		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})
}

func TestRefreshToken(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("rotates the refresh token", func(t *testing.T) {
		tx := ts.BeginTx(t)
		helpers.CreateUser(t, tx, "refresh@example.com", models.UserRoleApplicant)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"email":    "refresh@example.com",
			"password": helpers.DefaultPassword,
		}, "")
		helpers.RequireStatus(t, w, http.StatusOK)

		var first dto.LoginResponse
		helpers.DecodeJSON(t, w, &first)

		w = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/refresh", map[string]interface{}{
			"refresh_token": first.RefreshToken,
		}, "")
		helpers.RequireStatus(t, w, http.StatusOK)

		var second dto.LoginResponse
		helpers.DecodeJSON(t, w, &second)
		require.NotEmpty(t, second.RefreshToken)
		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

		// The rotated-out token is dead
		w = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/refresh", map[string]interface{}{
			"refresh_token": first.RefreshToken,
		}, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/refresh", map[string]interface{}{
			"refresh_token": "deadbeef",
		}, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("invalidates the refresh token", func(t *testing.T) {
		tx := ts.BeginTx(t)
		helpers.CreateUser(t, tx, "logout@example.com", models.UserRoleApplicant)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"email":    "logout@example.com",
			"password": helpers.DefaultPassword,
		}, "")
		helpers.RequireStatus(t, w, http.StatusOK)

		var resp dto.LoginResponse
		helpers.DecodeJSON(t, w, &resp)

		w = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/logout", map[string]interface{}{
			"refresh_token": resp.RefreshToken,
		}, "")
		helpers.RequireStatus(t, w, http.StatusNoContent)

		w = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/refresh", map[string]interface{}{
			"refresh_token": resp.RefreshToken,
		}, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})
}

func TestChangePassword(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("changes password and revokes sessions", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginApplicant(t, tx, "changepw@example.com")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/password/change", map[string]interface{}{
			"old_password": helpers.DefaultPassword,
			"new_password": "newpassword123",
		}, token)
		helpers.RequireStatus(t, w, http.StatusOK)

		// Old password no longer logs in, new one does
		w = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"email":    "changepw@example.com",
			"password": helpers.DefaultPassword,
		}, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)

		w = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"email":    "changepw@example.com",
			"password": "newpassword123",
		}, "")
		helpers.RequireStatus(t, w, http.StatusOK)
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginApplicant(t, tx, "changepw2@example.com")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/password/change", map[string]interface{}{
			"old_password": "not-the-password",
			"new_password": "newpassword123",
		}, token)
		helpers.RequireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("requires authentication", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/password/change", map[string]interface{}{
			"old_password": "a",
			"new_password": "newpassword123",
		}, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})
}
