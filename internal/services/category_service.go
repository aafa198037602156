package services

import (
	"strings"

	"careernode_backend/internal/auth"
	"careernode_backend/internal/models"
	"careernode_backend/internal/repositories"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	List(db *gorm.DB) ([]dto.CategoryResponse, error)
	Create(db *gorm.DB, actor auth.Actor, name string) (*dto.CategoryResponse, error)
	Delete(db *gorm.DB, actor auth.Actor, id string) error
	SeedDefaults(db *gorm.DB) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List(db *gorm.DB) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCategoryListResponse(categories), nil
}

// Create adds a category. Admin only; ordinary requests never mutate
// categories.
func (s *CategoryServiceImpl) Create(db *gorm.DB, actor auth.Actor, name string) (*dto.CategoryResponse, error) {
	if !auth.IsAdmin(actor) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	category := &models.Category{
		Name: name,
		Slug: Slugify(name),
	}

	if err := s.categoryRepo.Create(db, category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewCategoryResponse(category), nil
}

// Delete removes a category; its jobs are detached, not deleted
func (s *CategoryServiceImpl) Delete(db *gorm.DB, actor auth.Actor, id string) error {
	if !auth.IsAdmin(actor) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.categoryRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// SeedDefaults inserts the stock category list, skipping ones that exist
func (s *CategoryServiceImpl) SeedDefaults(db *gorm.DB) error {
	defaults := []string{
		"Software Development", "Marketing", "Design", "Sales",
		"Customer Support", "Data Science", "Product Management", "Finance",
	}

	for _, name := range defaults {
		slug := Slugify(name)
		if _, err := s.categoryRepo.FindBySlug(db, slug); err == nil {
			continue
		}
		if err := s.categoryRepo.Create(db, &models.Category{Name: name, Slug: slug}); err != nil {
			return err
		}
	}
	return nil
}

// Slugify turns a category name into its URL-safe slug. Runs of
// separators collapse into a single hyphen; anything else is dropped.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
