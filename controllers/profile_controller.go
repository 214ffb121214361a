package controllers

import (
	"net/http"

	"farmconnect/models"
	"farmconnect/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileService *services.ProfileService
}

func NewProfileController() *ProfileController {
	return &ProfileController{profileService: services.NewProfileService()}
}

// GetConsumerProfile godoc
// @Summary Get consumer profile
// @Description Get the current user's consumer profile
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/consumer/profile [get]
func (ctrl *ProfileController) GetConsumerProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := ctrl.profileService.GetConsumerProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    profile,
	})
}

// UpdateConsumerProfile godoc
// @Summary Update consumer profile
// @Description Update location, dietary goals and health conditions. Health conditions must come from the recognized condition list.
// @Tags Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateConsumerProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/consumer/profile [put]
func (ctrl *ProfileController) UpdateConsumerProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateConsumerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	profile, err := ctrl.profileService.UpdateConsumerProfile(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    profile,
	})
}

// GetFarmerProfile godoc
// @Summary Get farmer profile
// @Description Get the current user's farmer profile
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/farmer/profile [get]
func (ctrl *ProfileController) GetFarmerProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := ctrl.profileService.GetFarmerProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    profile,
	})
}

// UpdateFarmerProfile godoc
// @Summary Update farmer profile
// @Description Update bio, location and farm name
// @Tags Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateFarmerProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/farmer/profile [put]
func (ctrl *ProfileController) UpdateFarmerProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateFarmerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	profile, err := ctrl.profileService.UpdateFarmerProfile(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    profile,
	})
}
