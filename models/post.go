package models

import "time"

type Post struct {
	ID        int       `json:"id"`
	FarmerID  int       `json:"farmer_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostFarmer is the denormalized farmer block embedded in feed responses.
type PostFarmer struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	FarmName  string `json:"farm_name"`
}

type PostWithFarmer struct {
	Post
	Farmer   PostFarmer `json:"farmer"`
	Products []Product  `json:"products"`
}

type PaginatedPosts struct {
	Posts   []PostWithFarmer `json:"posts"`
	Total   int              `json:"total"`
	HasMore bool             `json:"has_more"`
}
