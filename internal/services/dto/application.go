package dto

import (
	"time"

	"careernode_backend/internal/models"
)

// CreateApplicationRequest is the application payload. The applicant is
// always the authenticated actor; status starts at pending and no endpoint
// moves it from there.
type CreateApplicationRequest struct {
	JobID       string `json:"job" validate:"required,uuid"`
	Resume      string `json:"resume" validate:"required,max=500"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	Job         string                   `json:"job"`
	JobTitle    string                   `json:"job_title,omitempty"`
	Applicant   string                   `json:"applicant"`
	Resume      string                   `json:"resume"`
	CoverLetter string                   `json:"cover_letter"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"applied_at"`
}

func NewApplicationResponse(application *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          application.ID,
		Job:         application.JobID,
		Applicant:   application.ApplicantID,
		Resume:      application.Resume,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		AppliedAt:   application.CreatedAt,
	}
	if application.Job != nil {
		resp.JobTitle = application.Job.Title
	}
	return resp
}

func NewApplicationListResponse(applications []models.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, *NewApplicationResponse(&applications[i]))
	}
	return responses
}
