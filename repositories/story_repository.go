package repositories

import (
	"context"
	"time"

	"farmconnect/config"
	"farmconnect/models"
)

type StoryRepository struct{}

func NewStoryRepository() *StoryRepository {
	return &StoryRepository{}
}

func (r *StoryRepository) Create(story *models.Story) error {
	query := `
		INSERT INTO stories (farmer_id, content, duration, media_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(context.Background(), query,
		story.FarmerID,
		story.Content,
		story.Duration,
		story.MediaURL,
		time.Now(),
	).Scan(&story.ID, &story.CreatedAt)
}

// FindActive returns stories still inside their visibility window.
func (r *StoryRepository) FindActive() ([]models.Story, error) {
	cutoff := time.Now().Add(-models.StoryLifetime)

	query := `SELECT id, farmer_id, content, duration, media_url, created_at
	          FROM stories WHERE created_at > $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := []models.Story{}
	for rows.Next() {
		var s models.Story
		if err := rows.Scan(&s.ID, &s.FarmerID, &s.Content, &s.Duration, &s.MediaURL, &s.CreatedAt); err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, nil
}
