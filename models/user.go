package models

import "time"

const (
	RoleConsumer = "CONSUMER"
	RoleFarmer   = "FARMER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ConsumerProfile struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	Location         string    `json:"location"`
	DietaryGoals     string    `json:"dietary_goals"`
	HealthConditions []string  `json:"health_conditions"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type FarmerProfile struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	FarmName  string    `json:"farm_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
