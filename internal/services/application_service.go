package services

import (
	"careernode_backend/internal/auth"
	"careernode_backend/internal/models"
	"careernode_backend/internal/repositories"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	ListMine(db *gorm.DB, actor auth.Actor) ([]dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Create submits an application as the actor. A nonexistent job is a
// validation failure on the payload, not a 404; the duplicate check lives
// in the unique index so a re-apply races cleanly.
func (s *ApplicationServiceImpl) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if !auth.CanCreate(actor, auth.KindApplication) {
		return nil, auth.DenyError(actor)
	}

	if _, err := s.jobRepo.FindByID(db, req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewBadRequestError("Job does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:       req.JobID,
		ApplicantID: actor.ID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	created, err := s.applicationRepo.FindByID(db, application.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewApplicationResponse(created), nil
}

// ListMine returns the actor's own applications, newest first
func (s *ApplicationServiceImpl) ListMine(db *gorm.DB, actor auth.Actor) ([]dto.ApplicationResponse, error) {
	if !actor.Authenticated {
		return nil, auth.DenyError(actor)
	}

	applications, err := s.applicationRepo.FindByApplicant(db, actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewApplicationListResponse(applications), nil
}
