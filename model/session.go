package model

import "time"

// App categories shown by the tracker. Sessions accept free-form category
// strings but these are the conventional values.
const (
	CategorySocialMedia   = "Social Media"
	CategoryWork          = "Work"
	CategoryGames         = "Games"
	CategoryEntertainment = "Entertainment"
	CategoryOther         = "Other"
)

// Categories lists the conventional app categories in display order.
var Categories = []string{
	CategorySocialMedia,
	CategoryWork,
	CategoryGames,
	CategoryEntertainment,
	CategoryOther,
}

type ScreenTimeSession struct {
	SessionID int       `bson:"_id" json:"id"`
	UserID    int       `bson:"user_id" json:"userId"`
	Category  string    `bson:"category" json:"category" binding:"required"`
	Duration  int       `bson:"duration" json:"duration" binding:"required"` // in minutes
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
