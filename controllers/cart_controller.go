package controllers

import (
	"net/http"

	"farmconnect/models"
	"farmconnect/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController() *CartController {
	return &CartController{cartService: services.NewCartService()}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current user's cart items with embedded products
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.cartService.GetCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch cart items",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    items,
	})
}

// AddToCart godoc
// @Summary Add to cart
// @Description Apply a quantity delta to a cart line. Repeated adds accumulate in one line; a resulting quantity below 1 removes it.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product and quantity delta"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.cartService.AddToCart(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if item == nil {
		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Item removed from cart",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated successfully",
		Data:    item,
	})
}

// RemoveFromCart godoc
// @Summary Remove cart item
// @Description Remove a cart line owned by the current user
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RemoveCartItemRequest true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.cartService.RemoveFromCart(userID, req.ID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
	})
}

// HealthCheck godoc
// @Summary Check cart health compatibility
// @Description Classify each cart item as good or warning against the user's declared health conditions
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.HealthCheckRequest false "Optional condition override"
// @Success 200 {object} models.Response
// @Router /api/cart/health-check [post]
func (ctrl *CartController) HealthCheck(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.HealthCheckRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}
	}

	statuses, err := ctrl.cartService.CheckCartHealth(userID, req.HealthConditions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to evaluate cart",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart evaluated successfully",
		Data:    statuses,
	})
}
