package services

import (
	"errors"
	"fmt"
	"log"
	"math"

	"farmconnect/models"
	"farmconnect/repositories"
)

type OrderService struct {
	orderRepo *repositories.OrderRepository
	userRepo  *repositories.UserRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orderRepo: repositories.NewOrderRepository(),
		userRepo:  repositories.NewUserRepository(),
	}
}

func (s *OrderService) Checkout(userID int) (*models.Order, error) {
	order, err := s.orderRepo.Checkout(userID)
	if err != nil {
		return nil, err
	}

	// Confirmation email is best effort; the order stands either way.
	if user, uerr := s.userRepo.FindByID(userID); uerr == nil {
		if emailService, eerr := models.NewEmailService(); eerr == nil {
			orderNumber := fmt.Sprintf("FC-%d", order.ID)
			if serr := emailService.SendOrderConfirmationEmail(user.Email, orderNumber, order.TotalAmount); serr != nil {
				log.Printf("Failed to send order confirmation email: %v", serr)
			}
		}
	}

	return order, nil
}

func (s *OrderService) GetOrders(userID, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.orderRepo.FindByUser(userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *OrderService) GetOrderByID(id, userID int) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("order not found")
	}
	if order.UserID != userID {
		return nil, errors.New("order not found")
	}
	return order, nil
}

func (s *OrderService) UpdateOrderStatus(id int, status string) error {
	if !models.IsValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if _, err := s.orderRepo.FindByID(id); err != nil {
		return errors.New("order not found")
	}
	return s.orderRepo.UpdateStatus(id, status)
}
