package controllers

import (
	"net/http"

	"farmconnect/models"
	"farmconnect/services"

	"github.com/gin-gonic/gin"
)

type StoryController struct {
	storyService *services.StoryService
}

func NewStoryController() *StoryController {
	return &StoryController{storyService: services.NewStoryService()}
}

// GetStories godoc
// @Summary List active stories
// @Description Get farmer stories posted within the last 24 hours
// @Tags Stories
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/stories [get]
func (ctrl *StoryController) GetStories(c *gin.Context) {
	stories, err := ctrl.storyService.GetActiveStories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch stories",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Stories retrieved successfully",
		Data:    stories,
	})
}

// CreateStory godoc
// @Summary Create story
// @Description Post a story that stays visible for 24 hours (farmer only)
// @Tags Stories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateStoryRequest true "Story data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/stories [post]
func (ctrl *StoryController) CreateStory(c *gin.Context) {
	farmerID, ok := currentFarmerID(c)
	if !ok {
		return
	}

	var req models.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	story, err := ctrl.storyService.CreateStory(farmerID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create story",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Story created successfully",
		Data:    story,
	})
}
