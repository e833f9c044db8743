// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/domain/entity"
)

// CategoryTemplateModel represents the category_templates table. Templates
// are global rows copied into each new user's catalog on registration.
type CategoryTemplateModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(60);not null"`
	NormalizedTitle string    `gorm:"type:varchar(60);uniqueIndex;not null"`
	Description     *string   `gorm:"type:varchar(160)"`
	IconKey         string    `gorm:"type:varchar(30);not null"`
	ColorKey        string    `gorm:"type:varchar(20);not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryTemplateModel.
func (CategoryTemplateModel) TableName() string {
	return "category_templates"
}

// ToEntity converts a CategoryTemplateModel to a domain CategoryTemplate entity.
func (m *CategoryTemplateModel) ToEntity() *entity.CategoryTemplate {
	return &entity.CategoryTemplate{
		ID:              m.ID,
		Name:            m.Name,
		NormalizedTitle: m.NormalizedTitle,
		Description:     m.Description,
		IconKey:         m.IconKey,
		ColorKey:        m.ColorKey,
		CreatedAt:       m.CreatedAt,
	}
}

// CategoryTemplateFromEntity creates a CategoryTemplateModel from a domain entity.
func CategoryTemplateFromEntity(template *entity.CategoryTemplate) *CategoryTemplateModel {
	return &CategoryTemplateModel{
		ID:              template.ID,
		Name:            template.Name,
		NormalizedTitle: template.NormalizedTitle,
		Description:     template.Description,
		IconKey:         template.IconKey,
		ColorKey:        template.ColorKey,
		CreatedAt:       template.CreatedAt,
	}
}
