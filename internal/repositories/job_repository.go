package repositories

import (
	"errors"

	"careernode_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter carries the recognized query parameters of the public job list.
// Zero-valued fields are skipped; anything the client sends beyond these is
// ignored upstream, never an error.
type JobFilter struct {
	CategoryID string
	JobType    string
	Location   string
	Title      string
	Search     string
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindActive(db *gorm.DB, filter JobFilter) ([]models.Job, error)
	FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id string) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Employer").Preload("Category").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindActive applies the filter over active jobs. The explicit filters
// (category, job_type, location, title) combine with AND; search is one
// OR-group over title/description/location ANDed against the rest.
// Inactive jobs are invisible here regardless of who asks.
func (r *JobRepositoryImpl) FindActive(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	query := db.Model(&models.Job{}).Where("is_active = ?", true)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR location ILIKE ?",
			search, search, search,
		)
	}

	var jobs []models.Job
	// id is the tie-break so equal timestamps still order deterministically
	err := query.Preload("Employer").Preload("Category").
		Order("created_at DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Category").Where("employer_id = ?", employerID).
		Order("created_at DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

// Update persists the mutable job fields. EmployerID and CreatedAt are
// deliberately absent: ownership never changes hands after creation.
func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(job).Updates(map[string]interface{}{
		"category_id":  job.CategoryID,
		"title":        job.Title,
		"description":  job.Description,
		"company_logo": job.CompanyLogo,
		"location":     job.Location,
		"salary":       job.Salary,
		"job_type":     job.JobType,
		"is_active":    job.IsActive,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete removes the job together with its applications
func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
