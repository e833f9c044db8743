// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/integration/persistence/model"
)

// seedTemplate describes one built-in category template.
type seedTemplate struct {
	name        string
	description string
	iconKey     string
	colorKey    string
}

// seedTemplates is the built-in category catalog copied to every new user.
var seedTemplates = []seedTemplate{
	{"Alimentação", "Restaurantes, delivery e refeições", "utensils", "blue"},
	{"Entretenimento", "Cinema, jogos e lazer", "ticket", "pink"},
	{"Investimento", "Aplicações e retornos financeiros", "piggy-bank", "green"},
	{"Mercado", "Compras de supermercado e mantimentos", "shopping-cart", "orange"},
	{"Salário", "Renda mensal e bonificações", "briefcase", "green"},
	{"Saúde", "Medicamentos, consultas e exames", "heart", "red"},
	{"Transporte", "Gasolina, transporte público e viagens", "car", "purple"},
	{"Utilidades", "Energia, água, internet e telefone", "tool-case", "yellow"},
}

// SeedCategoryTemplates inserts the built-in templates if the table is
// empty. Called once at startup; an already seeded table is left untouched
// so operators can curate it.
func SeedCategoryTemplates(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CategoryTemplateModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	templateModels := make([]*model.CategoryTemplateModel, len(seedTemplates))
	for i, t := range seedTemplates {
		description := t.description
		templateModels[i] = &model.CategoryTemplateModel{
			ID:              uuid.New(),
			Name:            t.name,
			NormalizedTitle: entity.NormalizeTitle(t.name),
			Description:     &description,
			IconKey:         t.iconKey,
			ColorKey:        t.colorKey,
			CreatedAt:       now,
		}
	}

	if err := db.WithContext(ctx).Create(templateModels).Error; err != nil {
		return err
	}

	slog.Info("Seeded category templates", "count", len(templateModels))
	return nil
}
