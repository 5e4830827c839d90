package model

import "time"

// SharedRecipe publishes an owned recipe into the public listing.
// A user can publish a given recipe at most once.
type SharedRecipe struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_share_user_recipe"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:idx_share_user_recipe"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID"`
}
