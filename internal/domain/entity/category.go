// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultCategoryColorKey is the default color key for categories.
const DefaultCategoryColorKey = "blue"

// DefaultCategoryIconKey is the default icon key for categories.
const DefaultCategoryIconKey = "tag"

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 60

// MaxCategoryDescriptionLength is the maximum allowed length for category descriptions.
const MaxCategoryDescriptionLength = 160

// CategoryIconKeys lists the icon keys the UI knows how to render.
var CategoryIconKeys = []string{
	"briefcase", "car", "heart", "piggy-bank", "shopping-cart", "ticket",
	"shopping-bag", "utensils", "users", "home", "gift", "dumbbell",
	"book-open", "sofa", "wallet", "file-text", "tool-case", "tag",
}

// CategoryColorKeys lists the color keys the UI knows how to render.
var CategoryColorKeys = []string{
	"blue", "purple", "pink", "red", "orange", "yellow", "green",
}

// IsValidCategoryIconKey reports whether key is a renderable icon key.
func IsValidCategoryIconKey(key string) bool {
	for _, k := range CategoryIconKeys {
		if k == key {
			return true
		}
	}
	return false
}

// IsValidCategoryColorKey reports whether key is a renderable color key.
func IsValidCategoryColorKey(key string) bool {
	for _, k := range CategoryColorKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Category represents a transaction category in the Financy system.
// NormalizedTitle is a case- and diacritic-insensitive projection of Name,
// unique per user, used for duplicate detection.
type Category struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	NormalizedTitle string
	Description     *string
	IconKey         string
	ColorKey        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCategory creates a new Category entity. NormalizedTitle is derived
// from name; defaulting of icon and color keys is the use case's job.
func NewCategory(userID uuid.UUID, name string, description *string, iconKey, colorKey string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		NormalizedTitle: NormalizeTitle(name),
		Description:     description,
		IconKey:         iconKey,
		ColorKey:        colorKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CategoryTemplate represents a global seed category copied into each new
// user's catalog on registration.
type CategoryTemplate struct {
	ID              uuid.UUID
	Name            string
	NormalizedTitle string
	Description     *string
	IconKey         string
	ColorKey        string
	CreatedAt       time.Time
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTitle lowercases, strips diacritics, and collapses whitespace so
// that "  Alimentação " and "alimentacao" compare equal.
func NormalizeTitle(value string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))
	stripped, _, err := transform.String(diacriticStripper, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}
