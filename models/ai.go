package models

// Typed request/response shapes for the generative AI flows. The model output
// must conform to the response schema or the flow fails; there is no partial
// or degraded output.

type DietaryRecommendationInput struct {
	HealthConditions []string `json:"health_conditions"`
	DietaryGoals     string   `json:"dietary_goals" binding:"required"`
}

type DietaryRecommendationOutput struct {
	Recommendations []string `json:"recommendations"`
	Explanation     string   `json:"explanation"`
}

type ProductDescriptionInput struct {
	ProductName string `json:"product_name" binding:"required"`
	ProductType string `json:"product_type" binding:"required,oneof=fruit vegetable"`
	KeyTraits   string `json:"key_traits" binding:"required"`
}

type ProductDescriptionOutput struct {
	Description string `json:"description"`
}

type CropDemandRequest struct {
	Crop     string  `json:"crop" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Location string  `json:"location" binding:"required"`
}

type CropDemandSummaryInput struct {
	CropDemandRequests []CropDemandRequest `json:"crop_demand_requests" binding:"required,dive"`
}

type CropDemandSummaryOutput struct {
	Summary string `json:"summary"`
}

type AssistantRequest struct {
	Message string `json:"message" binding:"required"`
}

type AssistantResponse struct {
	Intent string `json:"intent"`
	URL    string `json:"url"`
}
