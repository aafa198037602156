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

func TestCreateApplication(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("applicant applies to a job", func(t *testing.T) {
		tx := ts.BeginTx(t)
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "apply-emp@example.com")
		applicant, token := helpers.CreateAndLoginApplicant(t, tx, "apply-app@example.com")
		job := helpers.CreateJob(t, tx, employer.ID, "Open Position")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", map[string]interface{}{
			"job":          job.ID,
			"resume":       "https://example.com/cv.pdf",
			"cover_letter": "Please hire me",
		}, token)

		helpers.RequireStatus(t, w, http.StatusCreated)

		var resp dto.ApplicationResponse
		helpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, job.ID, resp.Job)
		assert.Equal(t, applicant.ID, resp.Applicant)
		assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	})

	t.Run("applicant in body is ignored", func(t *testing.T) {
		tx := ts.BeginTx(t)
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "spoof-emp@example.com")
		applicant, token := helpers.CreateAndLoginApplicant(t, tx, "spoof-app@example.com")
		other := helpers.CreateUser(t, tx, "spoof-other@example.com", models.UserRoleApplicant)
		job := helpers.CreateJob(t, tx, employer.ID, "Spoof Target")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", map[string]interface{}{
			"job":       job.ID,
			"resume":    "https://example.com/cv.pdf",
			"applicant": other.ID,
		}, token)

		helpers.RequireStatus(t, w, http.StatusCreated)

		var resp dto.ApplicationResponse
		helpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, applicant.ID, resp.Applicant)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		tx := ts.BeginTx(t)
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "anon-apply-emp@example.com")
		job := helpers.CreateJob(t, tx, employer.ID, "Anon Apply")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", map[string]interface{}{
			"job":    job.ID,
			"resume": "https://example.com/cv.pdf",
		}, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("nonexistent job is a 400", func(t *testing.T) {
		tx := ts.BeginTx(t)
		_, token := helpers.CreateAndLoginApplicant(t, tx, "nojob-app@example.com")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", map[string]interface{}{
			"job":    "00000000-0000-0000-0000-000000000000",
			"resume": "https://example.com/cv.pdf",
		}, token)
		helpers.RequireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing resume is a 400", func(t *testing.T) {
		tx := ts.BeginTx(t)
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "nores-emp@example.com")
		_, token := helpers.CreateAndLoginApplicant(t, tx, "nores-app@example.com")
		job := helpers.CreateJob(t, tx, employer.ID, "Resume Required")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", map[string]interface{}{
			"job": job.ID,
		}, token)
		helpers.RequireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("second application to same job is a 409", func(t *testing.T) {
		tx := ts.BeginTx(t)
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "dup-emp@example.com")
		_, token := helpers.CreateAndLoginApplicant(t, tx, "dup-app@example.com")
		job := helpers.CreateJob(t, tx, employer.ID, "One Shot")

		w := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", map[string]interface{}{
			"job":    job.ID,
			"resume": "https://example.com/cv.pdf",
		}, token)
		helpers.RequireStatus(t, w, http.StatusCreated)

		// The unique index rejects the re-apply; nothing runs on this
		// transaction afterwards.
		w = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", map[string]interface{}{
			"job":    job.ID,
			"resume": "https://example.com/cv-v2.pdf",
		}, token)
		helpers.RequireStatus(t, w, http.StatusConflict)
	})
}

func TestMyApplications(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("returns only the actor's applications", func(t *testing.T) {
		tx := ts.BeginTx(t)
		employer, _ := helpers.CreateAndLoginEmployer(t, tx, "mine-emp@example.com")
		applicant, token := helpers.CreateAndLoginApplicant(t, tx, "mine-app@example.com")
		other, _ := helpers.CreateAndLoginApplicant(t, tx, "mine-other@example.com")

		jobA := helpers.CreateJob(t, tx, employer.ID, "Job A")
		jobB := helpers.CreateJob(t, tx, employer.ID, "Job B")

		helpers.CreateApplication(t, tx, jobA.ID, applicant.ID)
		helpers.CreateApplication(t, tx, jobB.ID, applicant.ID)
		helpers.CreateApplication(t, tx, jobA.ID, other.ID)

		w := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/applications/my", nil, token)
		helpers.RequireStatus(t, w, http.StatusOK)

		var applications []dto.ApplicationResponse
		helpers.DecodeJSON(t, w, &applications)
		require.Len(t, applications, 2)
		for _, a := range applications {
			assert.Equal(t, applicant.ID, a.Applicant)
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		tx := ts.BeginTx(t)

		w := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/applications/my", nil, "")
		helpers.RequireStatus(t, w, http.StatusUnauthorized)
	})
}
