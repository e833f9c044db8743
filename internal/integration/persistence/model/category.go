// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// NormalizedTitle carries the per-user uniqueness constraint so duplicate
// names differing only in case or diacritics are rejected at the database
// level as well.
type CategoryModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_user_normalized"`
	Name            string    `gorm:"type:varchar(60);not null"`
	NormalizedTitle string    `gorm:"type:varchar(60);not null;uniqueIndex:idx_categories_user_normalized"`
	Description     *string   `gorm:"type:varchar(160)"`
	IconKey         string    `gorm:"type:varchar(30);not null;default:'tag'"`
	ColorKey        string    `gorm:"type:varchar(20);not null;default:'blue'"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		NormalizedTitle: m.NormalizedTitle,
		Description:     m.Description,
		IconKey:         m.IconKey,
		ColorKey:        m.ColorKey,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:              category.ID,
		UserID:          category.UserID,
		Name:            category.Name,
		NormalizedTitle: category.NormalizedTitle,
		Description:     category.Description,
		IconKey:         category.IconKey,
		ColorKey:        category.ColorKey,
		CreatedAt:       category.CreatedAt,
		UpdatedAt:       category.UpdatedAt,
	}
}
