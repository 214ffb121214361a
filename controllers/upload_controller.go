package controllers

import (
	"net/http"

	"farmconnect/models"
	"farmconnect/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// UploadImage godoc
// @Summary Upload image
// @Description Upload an image for products, posts or stories. Uses cloudinary when configured, local storage otherwise.
// @Tags Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param folder formData string false "Target folder" default(products)
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/upload [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file is required",
		})
		return
	}

	folder := c.DefaultPostForm("folder", "products")

	if cld, err := models.NewCloudinaryService(); err == nil {
		if err := cld.ValidateImageFile(fileHeader); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to read uploaded file",
			})
			return
		}
		defer file.Close()

		url, _, err := cld.UploadImage(c.Request.Context(), file, fileHeader.Filename, folder)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to upload image",
			})
			return
		}

		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Image uploaded successfully",
			Data:    gin.H{"url": url},
		})
		return
	}

	path, err := utils.UploadFile(c, fileHeader, folder)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Image uploaded successfully",
		Data:    gin.H{"url": "/uploads/" + path},
	})
}
