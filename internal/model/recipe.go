package model

import (
	"strings"
	"time"
)

// Recipe is an owned recipe, visible only to its author until shared.
type Recipe struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Servings    string     `json:"servings,omitempty" gorm:"size:64"`
	CookTime    string     `json:"cook_time,omitempty" gorm:"size:64"`
	Ingredients StringList `json:"ingredients" gorm:"type:json"`
	Steps       StringList `json:"steps" gorm:"type:json"`
	ImagePath   string     `json:"image_path,omitempty" gorm:"size:255"`
	CreatedAt   time.Time  `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// RecipeSummary is a list row for a user's own recipes.
type RecipeSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Servings  string `json:"servings,omitempty"`
	CookTime  string `json:"cook_time,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
}

// SharedSummary is a list row for published and favorited recipes.
// ID is the publication id, not the owned recipe id.
type SharedSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	ImagePath string `json:"image_path,omitempty"`
}

// RecipeDetail is the full view of a recipe from any source.
type RecipeDetail struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Servings    string     `json:"servings,omitempty"`
	CookTime    string     `json:"cook_time,omitempty"`
	Ingredients StringList `json:"ingredients"`
	Steps       StringList `json:"steps"`
	ImagePath   string     `json:"image_path,omitempty"`
}

// PublishedRecipe is a public listing row including the author's name.
type PublishedRecipe struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Servings    string     `json:"servings,omitempty"`
	CookTime    string     `json:"cook_time,omitempty"`
	ImagePath   string     `json:"image_path,omitempty"`
	UserID      uint       `json:"user_id"`
	Ingredients StringList `json:"ingredients"`
	Steps       StringList `json:"steps"`
	Username    string     `json:"username"`
}

// MatchesKeyword states the feed search contract: an empty keyword matches
// everything; otherwise the title must contain the keyword
// case-insensitively, or the ingredient list must contain it as an exact
// element. The share repository's SQL implements the same predicate
// (LOWER LIKE over title, JSON_CONTAINS over ingredients).
func (r PublishedRecipe) MatchesKeyword(keyword string) bool {
	if keyword == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), strings.ToLower(keyword)) {
		return true
	}
	return r.Ingredients.Contains(keyword)
}
