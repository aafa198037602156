package services

import (
	"careernode_backend/internal/auth"
	"careernode_backend/internal/models"
	"careernode_backend/internal/repositories"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	List(db *gorm.DB, query *dto.JobListQuery) ([]dto.JobResponse, error)
	Get(db *gorm.DB, id string) (*dto.JobResponse, error)
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(db *gorm.DB, actor auth.Actor, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(db *gorm.DB, actor auth.Actor, id string) error
	ListMine(db *gorm.DB, actor auth.Actor) ([]dto.JobResponse, error)
	ListApplications(db *gorm.DB, actor auth.Actor, jobID string) ([]dto.ApplicationResponse, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	categoryRepo    repositories.CategoryRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	categoryRepo repositories.CategoryRepository,
	applicationRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		categoryRepo:    categoryRepo,
		applicationRepo: applicationRepo,
	}
}

// List returns active jobs matching the query. Anyone may call it; the
// actor plays no part in filtering.
func (s *JobServiceImpl) List(db *gorm.DB, query *dto.JobListQuery) ([]dto.JobResponse, error) {
	filter := repositories.JobFilter{
		CategoryID: query.Category,
		JobType:    query.JobType,
		Location:   query.Location,
		Title:      query.Title,
		Search:     query.Search,
	}

	jobs, err := s.jobRepo.FindActive(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobListResponse(jobs), nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// Create posts a job for the actor. The employer is always the actor
// itself; a category, when given, must exist.
func (s *JobServiceImpl) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !auth.CanCreate(actor, auth.KindJob) {
		return nil, auth.DenyError(actor)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.NewBadRequestError("Category does not exist")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	job := &models.Job{
		EmployerID:  actor.ID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		CompanyLogo: req.CompanyLogo,
		Location:    req.Location,
		Salary:      req.Salary,
		JobType:     models.JobTypeFullTime,
		IsActive:    true,
	}
	if req.JobType != "" {
		job.JobType = models.JobType(req.JobType)
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.jobRepo.FindByID(db, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobResponse(created), nil
}

// Update applies a partial update to the job. Existence is checked before
// the policy so a missing job is 404 for everyone, owner or not.
func (s *JobServiceImpl) Update(db *gorm.DB, actor auth.Actor, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanMutate(actor, job) {
		return nil, auth.DenyError(actor)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.NewBadRequestError("Category does not exist")
			}
			return nil, apperrors.InternalError(err)
		}
		job.CategoryID = req.CategoryID
	}
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.CompanyLogo != nil {
		job.CompanyLogo = *req.CompanyLogo
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobResponse(updated), nil
}

// Delete removes the job and its applications. Same 404-before-policy
// ordering as Update.
func (s *JobServiceImpl) Delete(db *gorm.DB, actor auth.Actor, id string) error {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CanMutate(actor, job) {
		return auth.DenyError(actor)
	}

	if err := s.jobRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListMine returns every job the actor posted, inactive ones included
func (s *JobServiceImpl) ListMine(db *gorm.DB, actor auth.Actor) ([]dto.JobResponse, error) {
	if !actor.Authenticated {
		return nil, auth.DenyError(actor)
	}

	jobs, err := s.jobRepo.FindByEmployer(db, actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobListResponse(jobs), nil
}

// ListApplications returns the applications for a job. Visibility follows
// mutation rights: only the owning employer and admins see them.
func (s *JobServiceImpl) ListApplications(db *gorm.DB, actor auth.Actor, jobID string) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanMutate(actor, job) {
		return nil, auth.DenyError(actor)
	}

	applications, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewApplicationListResponse(applications), nil
}
