package repositories

import (
	"context"
	"time"

	"farmconnect/config"
	"farmconnect/models"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(event *models.Event) error {
	query := `
		INSERT INTO events (farmer_id, name, description, date, location, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		event.FarmerID,
		event.Name,
		event.Description,
		event.Date,
		event.Location,
		event.ImageURL,
		now,
		now,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *EventRepository) FindAll(page, limit int) ([]models.Event, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(), `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, farmer_id, name, description, date, location, image_url, created_at, updated_at
	          FROM events ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.FarmerID, &e.Name, &e.Description, &e.Date, &e.Location, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, nil
}

func (r *EventRepository) FindByID(id int) (*models.Event, error) {
	query := `SELECT id, farmer_id, name, description, date, location, image_url, created_at, updated_at
	          FROM events WHERE id = $1`

	var e models.Event
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.FarmerID, &e.Name, &e.Description, &e.Date, &e.Location, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Delete(id, farmerID int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		`DELETE FROM events WHERE id = $1 AND farmer_id = $2`, id, farmerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
