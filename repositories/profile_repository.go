package repositories

import (
	"context"
	"encoding/json"
	"time"

	"farmconnect/config"
	"farmconnect/models"
)

type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

// health_conditions is persisted as a JSON-encoded string array.
func encodeConditions(conditions []string) string {
	if conditions == nil {
		conditions = []string{}
	}
	data, _ := json.Marshal(conditions)
	return string(data)
}

func decodeConditions(raw string) []string {
	conditions := []string{}
	if raw == "" {
		return conditions
	}
	_ = json.Unmarshal([]byte(raw), &conditions)
	return conditions
}

func (r *ProfileRepository) CreateConsumerProfile(profile *models.ConsumerProfile) error {
	query := `
		INSERT INTO consumer_profiles (user_id, location, dietary_goals, health_conditions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		profile.UserID,
		profile.Location,
		profile.DietaryGoals,
		encodeConditions(profile.HealthConditions),
		now,
		now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *ProfileRepository) GetConsumerProfileByUserID(userID int) (*models.ConsumerProfile, error) {
	query := `SELECT id, user_id, location, dietary_goals, health_conditions, created_at, updated_at
	          FROM consumer_profiles WHERE user_id = $1`

	profile := &models.ConsumerProfile{}
	var rawConditions string
	err := config.DB.QueryRow(context.Background(), query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Location,
		&profile.DietaryGoals,
		&rawConditions,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	profile.HealthConditions = decodeConditions(rawConditions)
	return profile, nil
}

func (r *ProfileRepository) UpdateConsumerProfile(profile *models.ConsumerProfile) error {
	query := `UPDATE consumer_profiles
	          SET location = $1, dietary_goals = $2, health_conditions = $3, updated_at = $4
	          WHERE user_id = $5`
	_, err := config.DB.Exec(context.Background(), query,
		profile.Location,
		profile.DietaryGoals,
		encodeConditions(profile.HealthConditions),
		time.Now(),
		profile.UserID,
	)
	return err
}

func (r *ProfileRepository) CreateFarmerProfile(profile *models.FarmerProfile) error {
	query := `
		INSERT INTO farmer_profiles (user_id, bio, location, farm_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		profile.UserID,
		profile.Bio,
		profile.Location,
		profile.FarmName,
		now,
		now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *ProfileRepository) GetFarmerProfileByUserID(userID int) (*models.FarmerProfile, error) {
	query := `SELECT id, user_id, bio, location, farm_name, created_at, updated_at
	          FROM farmer_profiles WHERE user_id = $1`

	profile := &models.FarmerProfile{}
	err := config.DB.QueryRow(context.Background(), query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Bio,
		&profile.Location,
		&profile.FarmName,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepository) UpdateFarmerProfile(profile *models.FarmerProfile) error {
	query := `UPDATE farmer_profiles
	          SET bio = $1, location = $2, farm_name = $3, updated_at = $4
	          WHERE user_id = $5`
	_, err := config.DB.Exec(context.Background(), query,
		profile.Bio,
		profile.Location,
		profile.FarmName,
		time.Now(),
		profile.UserID,
	)
	return err
}
