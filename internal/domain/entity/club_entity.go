package entity

import "time"

// Category classifies a club in the directory.
type Category string

const (
	CategoryTechnical Category = "Technical"
	CategoryCultural  Category = "Cultural"
	CategorySports    Category = "Sports"
	CategoryLiterary  Category = "Literary"
	CategoryOther     Category = "Other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryCultural, CategorySports, CategoryLiterary, CategoryOther:
		return true
	}
	return false
}

// Club is a campus organization.
//
// ClubID is the stable external identifier events reference; it is distinct
// from the row id. FollowerCount tracks the number of users following the
// club and is only mutated together with the follow set, never independently.
type Club struct {
	ID            int64
	ClubID        int64
	Name          string
	Description   string
	Category      Category
	FollowerCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
