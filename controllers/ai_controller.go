package controllers

import (
	"net/http"

	"farmconnect/models"
	"farmconnect/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	aiService      *services.AIService
	profileService *services.ProfileService
}

func NewAIController() *AIController {
	return &AIController{
		aiService:      services.NewAIService(),
		profileService: services.NewProfileService(),
	}
}

// DietaryRecommendation godoc
// @Summary Get dietary recommendations
// @Description Generate personalized fruit and vegetable recommendations based on health conditions and dietary goals
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.DietaryRecommendationInput true "Health conditions and goals"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /api/ai/dietary-recommendation [post]
func (ctrl *AIController) DietaryRecommendation(c *gin.Context) {
	var input models.DietaryRecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	for _, condition := range input.HealthConditions {
		if !models.IsValidHealthCondition(condition) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Unknown health condition: " + condition,
			})
			return
		}
	}

	// Conditions omitted from the request fall back to the caller's profile.
	if input.HealthConditions == nil {
		if profile, err := ctrl.profileService.GetConsumerProfile(c.GetInt("user_id")); err == nil {
			input.HealthConditions = profile.HealthConditions
		}
	}

	output, err := ctrl.aiService.GetDietaryRecommendations(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Failed to generate recommendations",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Recommendations generated successfully",
		Data:    output,
	})
}

// ProductDescription godoc
// @Summary Generate product description
// @Description Generate a short marketing description for a fruit or vegetable listing
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ProductDescriptionInput true "Product details"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /api/ai/product-description [post]
func (ctrl *AIController) ProductDescription(c *gin.Context) {
	var input models.ProductDescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	output, err := ctrl.aiService.GenerateProductDescription(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Failed to generate description",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Description generated successfully",
		Data:    output,
	})
}

// CropDemandSummary godoc
// @Summary Summarize crop demand
// @Description Summarize a batch of crop demand requests for farmers
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CropDemandSummaryInput true "Crop demand requests"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /api/ai/crop-demand-summary [post]
func (ctrl *AIController) CropDemandSummary(c *gin.Context) {
	var input models.CropDemandSummaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	output, err := ctrl.aiService.SummarizeCropDemand(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Failed to summarize crop demand",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Crop demand summarized successfully",
		Data:    output,
	})
}

// Assistant godoc
// @Summary Classify assistant intent
// @Description Route a free-text farmer message to the product or post creation flow
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AssistantRequest true "Farmer message"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /api/ai/assistant [post]
func (ctrl *AIController) Assistant(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	intent, err := ctrl.aiService.ClassifyIntent(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Failed to classify message",
			Error:   err.Error(),
		})
		return
	}

	url := "/farmer/products/new"
	if intent == services.IntentPost {
		url = "/farmer/posts/new"
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Intent classified successfully",
		Data: models.AssistantResponse{
			Intent: intent,
			URL:    url,
		},
	})
}
