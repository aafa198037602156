package repositories

import (
	"errors"

	"careernode_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type CategoryRepository interface {
	FindAll(db *gorm.DB) ([]models.Category, error)
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Category, error)
	Create(db *gorm.DB, category *models.Category) error
	Delete(db *gorm.DB, id string) error
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindBySlug(db *gorm.DB, slug string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	err := db.Create(category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes the category and detaches its jobs. Jobs survive with a
// null category; a category is a label, not an owner.
func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Job{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
