package services

import (
	"errors"

	"farmconnect/models"
	"farmconnect/repositories"
)

type CartService struct {
	cartRepo    *repositories.CartRepository
	productRepo *repositories.ProductRepository
	profileRepo *repositories.ProfileRepository
	health      *HealthService
}

func NewCartService() *CartService {
	return &CartService{
		cartRepo:    repositories.NewCartRepository(),
		productRepo: repositories.NewProductRepository(),
		profileRepo: repositories.NewProfileRepository(),
		health:      NewHealthService(),
	}
}

func (s *CartService) GetCart(userID int) ([]models.CartItem, error) {
	return s.cartRepo.FindByUser(userID)
}

// AddToCart applies a quantity delta to the user's cart line for the product.
// A nil item in the result means the line was removed (quantity fell below 1).
func (s *CartService) AddToCart(userID int, req models.AddToCartRequest) (*models.CartItem, error) {
	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return nil, errors.New("product not found")
	}

	item, err := s.cartRepo.Upsert(userID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if item != nil {
		if product, perr := s.productRepo.FindByID(item.ProductID); perr == nil {
			item.Product = product
		}
	}
	return item, nil
}

func (s *CartService) RemoveFromCart(userID, itemID int) error {
	removed, err := s.cartRepo.Delete(itemID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return errors.New("cart item not found")
	}
	return nil
}

// CheckCartHealth evaluates the user's current cart against their declared
// health conditions. An explicit condition list overrides the profile's; a
// consumer without a profile is treated as having no conditions.
func (s *CartService) CheckCartHealth(userID int, override []string) (map[int]HealthStatus, error) {
	conditions := override
	if conditions == nil {
		profile, err := s.profileRepo.GetConsumerProfileByUserID(userID)
		if err == nil {
			conditions = profile.HealthConditions
		} else {
			conditions = []string{}
		}
	}

	items, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	checkItems := make([]HealthCheckItem, 0, len(items))
	for _, item := range items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		checkItems = append(checkItems, HealthCheckItem{ID: item.ID, Name: name})
	}

	return s.health.Evaluate(conditions, checkItems), nil
}
