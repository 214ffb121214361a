package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=3"`
	Role     string `json:"role" binding:"omitempty,oneof=CONSUMER FARMER"`
	Location string `json:"location"`
	FarmName string `json:"farm_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateConsumerProfileRequest struct {
	Location         string   `json:"location"`
	DietaryGoals     string   `json:"dietary_goals"`
	HealthConditions []string `json:"health_conditions"`
}

type UpdateFarmerProfileRequest struct {
	Bio      string `json:"bio"`
	Location string `json:"location"`
	FarmName string `json:"farm_name"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Unit        *string `json:"unit"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Unit        *string `json:"unit"`
}

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	ImageURL    string `json:"image_url"`
}

type CreatePostRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	ImageURL   *string `json:"image_url"`
	ProductIDs []int   `json:"product_ids"`
}

type CreateStoryRequest struct {
	Content  string `json:"content" binding:"required"`
	Duration int    `json:"duration" binding:"required,gt=0"`
	MediaURL string `json:"media_url"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

type RemoveCartItemRequest struct {
	ID int `json:"id" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type HealthCheckRequest struct {
	// Optional override; when empty the consumer profile's conditions are used.
	HealthConditions []string `json:"health_conditions"`
}
