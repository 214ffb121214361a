package controllers

import (
	"net/http"

	"farmconnect/models"
	"farmconnect/services"

	"github.com/gin-gonic/gin"
)

// currentFarmerID resolves the farmer profile id for the authenticated user.
// Writes a 403 response and returns false when the user has no farmer profile.
func currentFarmerID(c *gin.Context) (int, bool) {
	userID := c.GetInt("user_id")

	profile, err := services.NewProfileService().GetFarmerProfile(userID)
	if err != nil {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Farmer profile required",
		})
		return 0, false
	}
	return profile.ID, true
}
