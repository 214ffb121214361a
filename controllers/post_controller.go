package controllers

import (
	"net/http"
	"strconv"

	"farmconnect/models"
	"farmconnect/services"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController() *PostController {
	return &PostController{postService: services.NewPostService()}
}

// GetPosts godoc
// @Summary Get posts feed
// @Description Get paginated posts ordered by creation time descending
// @Tags Posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.Response
// @Router /api/posts [get]
func (ctrl *PostController) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.postService.GetPaginatedPosts(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch posts",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreatePost godoc
// @Summary Create post
// @Description Create a social post, optionally attaching own products (Farmer)
// @Tags Posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreatePostRequest true "Post data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	farmerID, ok := currentFarmerID(c)
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	post, err := ctrl.postService.CreatePost(farmerID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Post created successfully",
		Data:    post,
	})
}

// LikePost godoc
// @Summary Like a post
// @Description Increment the post's like counter. Likes are not deduplicated per user.
// @Tags Posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{postId}/like [post]
func (ctrl *PostController) LikePost(c *gin.Context) {
	postID, _ := strconv.Atoi(c.Param("postId"))
	if postID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid post ID"})
		return
	}

	post, err := ctrl.postService.LikePost(postID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Post not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Post liked",
		Data:    post,
	})
}

// DeletePost godoc
// @Summary Delete post
// @Tags Posts
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{postId} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	farmerID, ok := currentFarmerID(c)
	if !ok {
		return
	}

	postID, _ := strconv.Atoi(c.Param("postId"))
	if postID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid post ID"})
		return
	}

	if err := ctrl.postService.DeletePost(postID, farmerID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Post deleted successfully",
		Data:    gin.H{"id": postID},
	})
}
