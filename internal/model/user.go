package model

import "time"

// Unique index names on the users table. Duplicate-entry errors carry the
// index name, so these constants are how callers tell which constraint
// fired. They must stay in sync with the gorm tags below.
const (
	UserEmailIndex  = "uq_users_email"
	UserHandleIndex = "uq_users_handle"
)

// User represents a registered cook.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex:uq_users_email;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Handle         string    `json:"idCookpad" gorm:"column:id_cookpad;uniqueIndex:uq_users_handle;size:16;not null"`
	ProfilePicture string    `json:"profile_picture,omitempty" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserSummary is the public view returned on login and profile reads.
type UserSummary struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Handle         string `json:"idCookpad"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// Summary strips the user down to its public fields.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Handle:         u.Handle,
		ProfilePicture: u.ProfilePicture,
	}
}
