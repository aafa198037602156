package repositories

import (
	"errors"

	"careernode_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create inserts the application. The (job_id, applicant_id) unique index
// decides duplicates; two concurrent inserts both reach the database and
// exactly one wins, so there is no pre-check here.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	err := db.Create(application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Job").Where("applicant_id = ?", applicantID).
		Order("created_at DESC, id DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Applicant").Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").Find(&applications).Error
	return applications, err
}
