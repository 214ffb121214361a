package main

import (
	"log"

	"farmconnect/config"
	"farmconnect/models"
	"farmconnect/repositories"
	"farmconnect/utils"
)

// Seeds the database with demo accounts and catalog data. Safe to run only
// against a fresh database; it does not check for existing rows.
func main() {
	config.LoadConfig()
	config.ConnectDB()
	defer config.CloseDB()

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	productRepo := repositories.NewProductRepository()
	eventRepo := repositories.NewEventRepository()
	postRepo := repositories.NewPostRepository()

	password, err := utils.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	consumer := &models.User{
		Email:    "priya@example.com",
		Password: password,
		Name:     "Priya Sharma",
		Role:     models.RoleConsumer,
	}
	if err := userRepo.Create(consumer); err != nil {
		log.Fatalf("Failed to create consumer: %v", err)
	}
	if err := profileRepo.CreateConsumerProfile(&models.ConsumerProfile{
		UserID:           consumer.ID,
		Location:         "Mumbai, Maharashtra",
		DietaryGoals:     "Manage blood sugar and eat more fresh produce",
		HealthConditions: []string{"Diabetes Mellitus"},
	}); err != nil {
		log.Fatalf("Failed to create consumer profile: %v", err)
	}

	farmerUser := &models.User{
		Email:    "raj@example.com",
		Password: password,
		Name:     "Raj Kumar",
		Role:     models.RoleFarmer,
	}
	if err := userRepo.Create(farmerUser); err != nil {
		log.Fatalf("Failed to create farmer: %v", err)
	}
	farmer := &models.FarmerProfile{
		UserID:   farmerUser.ID,
		FarmName: "Green Valley Organic Farms",
		Bio:      "Family-run organic farm growing seasonal fruits and vegetables for over two decades.",
		Location: "Nashik, Maharashtra",
	}
	if err := profileRepo.CreateFarmerProfile(farmer); err != nil {
		log.Fatalf("Failed to create farmer profile: %v", err)
	}

	kg := "kg"
	pack := "pack"
	products := []*models.Product{
		{
			FarmerID:    farmer.ID,
			Name:        "Fresh Organic Tomatoes",
			Description: "Vine-ripened tomatoes picked this morning. Great for curries and salads.",
			Price:       40,
			Unit:        &kg,
		},
		{
			FarmerID:    farmer.ID,
			Name:        "Alphonso Mangoes",
			Description: "Sweet, fragrant Alphonso mangoes from our own orchard.",
			Price:       350,
			Unit:        &kg,
		},
		{
			FarmerID:    farmer.ID,
			Name:        "Dried Raisins (Kishmish) (250g)",
			Description: "Naturally sun-dried green raisins. No added sugar or preservatives.",
			Price:       120,
			Unit:        &pack,
		},
		{
			FarmerID:    farmer.ID,
			Name:        "Fresh Spinach (Palak)",
			Description: "Tender leafy spinach harvested daily.",
			Price:       25,
			Unit:        &pack,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Fatalf("Failed to create product %q: %v", p.Name, err)
		}
	}

	if err := eventRepo.Create(&models.Event{
		FarmerID:    farmer.ID,
		Name:        "Weekend Farm Visit & Harvest Experience",
		Description: "Tour the farm, pick your own vegetables and enjoy a fresh farm lunch.",
		Date:        "2026-09-12",
		Location:    "Green Valley Organic Farms, Nashik",
	}); err != nil {
		log.Fatalf("Failed to create event: %v", err)
	}

	if err := postRepo.Create(&models.Post{
		FarmerID: farmer.ID,
		Title:    "Mango season is here!",
		Content:  "Our Alphonso mangoes are finally ripe. First harvest goes out this week, order early before they run out.",
	}, []int{products[1].ID}); err != nil {
		log.Fatalf("Failed to create post: %v", err)
	}

	log.Println("Seed data created successfully")
	log.Printf("Consumer login: %s / password123", consumer.Email)
	log.Printf("Farmer login: %s / password123", farmerUser.Email)
}
