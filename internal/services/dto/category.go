package dto

import (
	"careernode_backend/internal/models"
)

// CreateCategoryRequest is admin-only; the slug is derived, never supplied
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *NewCategoryResponse(&categories[i]))
	}
	return responses
}
