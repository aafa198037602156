package dto

import (
	"time"

	"careernode_backend/internal/models"
)

// CreateJobRequest is the employer-facing creation payload.
// The employer is always taken from the authenticated actor, never from
// the request body.
type CreateJobRequest struct {
	CategoryID  *string  `json:"category,omitempty" validate:"omitempty,uuid"`
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"omitempty,max=10000"`
	CompanyLogo string   `json:"company_logo" validate:"omitempty,max=500"`
	Location    string   `json:"location" validate:"required,max=100"`
	Salary      *float64 `json:"salary,omitempty" validate:"omitempty,min=0"`
	JobType     string   `json:"job_type" validate:"omitempty,is-job-type"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type UpdateJobRequest struct {
	CategoryID  *string  `json:"category,omitempty" validate:"omitempty,uuid"`
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	CompanyLogo *string  `json:"company_logo,omitempty" validate:"omitempty,max=500"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	Salary      *float64 `json:"salary,omitempty" validate:"omitempty,min=0"`
	JobType     *string  `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// JobListQuery mirrors the recognized query parameters of GET /jobs.
// Unknown parameters are ignored by binding, not rejected.
type JobListQuery struct {
	Category string `form:"category"`
	JobType  string `form:"job_type"`
	Location string `form:"location"`
	Title    string `form:"title"`
	Search   string `form:"search"`
}

type JobResponse struct {
	ID           string         `json:"id"`
	Employer     string         `json:"employer"`
	EmployerName string         `json:"employer_name"`
	Category     *string        `json:"category"`
	CategoryName string         `json:"category_name"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	CompanyLogo  string         `json:"company_logo"`
	Location     string         `json:"location"`
	Salary       *float64       `json:"salary"`
	JobType      models.JobType `json:"job_type"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
}

func NewJobResponse(job *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:          job.ID,
		Employer:    job.EmployerID,
		Category:    job.CategoryID,
		Title:       job.Title,
		Description: job.Description,
		CompanyLogo: job.CompanyLogo,
		Location:    job.Location,
		Salary:      job.Salary,
		JobType:     job.JobType,
		IsActive:    job.IsActive,
		CreatedAt:   job.CreatedAt,
	}
	if job.Employer != nil {
		resp.EmployerName = job.Employer.FirstName
	}
	if job.Category != nil {
		resp.CategoryName = job.Category.Name
	}
	return resp
}

func NewJobListResponse(jobs []models.Job) []JobResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *NewJobResponse(&jobs[i]))
	}
	return responses
}
