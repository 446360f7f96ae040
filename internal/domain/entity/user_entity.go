package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password field.
//
// Following holds external club ids (Club.ClubID); the repository keeps it
// duplicate-free.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	AvatarURL string
	Following []int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFollowing reports whether the user follows the given club id.
func (u *User) IsFollowing(clubID int64) bool {
	for _, id := range u.Following {
		if id == clubID {
			return true
		}
	}
	return false
}
