package model

import "time"

// Favorite bookmarks a published recipe for a user. The composite unique
// index is what enforces at-most-one favorite per (user, publication) pair
// under concurrent requests; application code only surfaces the violation.
type Favorite struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_fav_user_share"`
	SharedRecipeID uint      `json:"resep_id" gorm:"not null;uniqueIndex:idx_fav_user_share"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	SharedRecipe SharedRecipe `json:"-" gorm:"foreignKey:SharedRecipeID"`
}

// FavoriteRow is a row of the global favorites listing, joined against the
// published recipe it bookmarks.
type FavoriteRow struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Title       string     `json:"title"`
	Servings    string     `json:"servings,omitempty"`
	CookTime    string     `json:"cook_time,omitempty"`
	Ingredients StringList `json:"ingredients"`
	Steps       StringList `json:"steps"`
	CreatedAt   time.Time  `json:"created_at"`
	ImagePath   string     `json:"image_path,omitempty"`
}
