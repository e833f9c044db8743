// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financy/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=60"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=160"`
	IconKey     string  `json:"icon_key,omitempty"`
	ColorKey    string  `json:"color_key,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
// Description uses a double pointer semantic at the controller: absent
// leaves it alone, explicit null clears it.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=60"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=160"`
	ClearDesc   bool    `json:"clear_description,omitempty"`
	IconKey     *string `json:"icon_key,omitempty"`
	ColorKey    *string `json:"color_key,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IconKey     string    `json:"icon_key"`
	ColorKey    string    `json:"color_key"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		IconKey:     category.IconKey,
		ColorKey:    category.ColorKey,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
