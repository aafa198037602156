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

func TestListCategories(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("is public and sorted by name", func(t *testing.T) {
		tx := ts.BeginTx(t)
		helpers.CreateCategory(t, tx, "Zoology", "zoology")
		helpers.CreateCategory(t, tx, "Aerospace", "aerospace")

		w := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/categories", nil, "")
		helpers.RequireStatus(t, w, http.StatusOK)

		var categories []dto.CategoryResponse
		helpers.DecodeJSON(t, w, &categories)

		// Seeded defaults are present too, so assert ordering, not count
		require.GreaterOrEqual(t, len(categories), 2)
		for i := 1; i < len(categories); i++ {
			assert.LessOrEqual(t, categories[i-1].Name, categories[i].Name)
		}
	})
}

func TestCreateCategory(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("admin creates a category with derived slug", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginAdmin(t, tx, "cat-admin@example.com")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/categories", map[string]interface{}{
			"name": "Machine Learning",
		}, token)

		helpers.RequireStatus(t, w, http.StatusCreated)

		var category dto.CategoryResponse
		helpers.DecodeJSON(t, w, &category)
		assert.Equal(t, "Machine Learning", category.Name)
		assert.Equal(t, "machine-learning", category.Slug)
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginEmployer(t, tx, "cat-emp@example.com")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/categories", map[string]interface{}{
			"name": "Forbidden",
		}, token)
		helpers.RequireStatus(t, w, http.StatusForbidden)
	})
}

func TestDeleteCategory(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("detaches jobs instead of deleting them", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, adminToken := helpers.CreateAndLoginAdmin(t, tx, "delcat-admin@example.com")
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "delcat-emp@example.com")
		category := helpers.CreateCategory(t, tx, "Doomed Category", "doomed-category")

		job := helpers.CreateJob(t, tx, employer.ID, "Survivor", func(j *models.Job) {
			j.CategoryID = &category.ID
		})

		w := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/categories/"+category.ID, nil, adminToken)
		helpers.RequireStatus(t, w, http.StatusNoContent)

		var reloaded models.Job
		require.NoError(t, tx.First(&reloaded, "id = ?", job.ID).Error)
		assert.Nil(t, reloaded.CategoryID)
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginApplicant(t, tx, "delcat-app@example.com")
		category := helpers.CreateCategory(t, tx, "Protected Category", "protected-category")

		w := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/categories/"+category.ID, nil, token)
		helpers.RequireStatus(t, w, http.StatusForbidden)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, adminToken := helpers.CreateAndLoginAdmin(t, tx, "delcat-404@example.com")

		w := ts.SendRequest(t, tx, http.MethodDelete,
			"/api/v1/categories/00000000-0000-0000-0000-000000000000", nil, adminToken)
		helpers.RequireStatus(t, w, http.StatusNotFound)
	})
}
