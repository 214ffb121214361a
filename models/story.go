package models

import "time"

// StoryLifetime is how long a story stays visible after posting.
const StoryLifetime = 24 * time.Hour

// Story is ephemeral, time-boxed content, distinct from a persistent Post.
type Story struct {
	ID        int       `json:"id"`
	FarmerID  int       `json:"farmer_id"`
	Content   string    `json:"content"`
	Duration  int       `json:"duration"`
	MediaURL  string    `json:"media_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Story) Expired(now time.Time) bool {
	return now.Sub(s.CreatedAt) > StoryLifetime
}
