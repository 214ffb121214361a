package services

import (
	"errors"

	"farmconnect/models"
	"farmconnect/repositories"
	"farmconnect/utils"
)

type AuthService struct {
	userRepo    *repositories.UserRepository
	profileRepo *repositories.ProfileRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo:    repositories.NewUserRepository(),
		profileRepo: repositories.NewProfileRepository(),
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, _ := s.userRepo.FindByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	role := req.Role
	if role == "" {
		role = models.RoleConsumer
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	switch role {
	case models.RoleFarmer:
		profile := &models.FarmerProfile{
			UserID:   user.ID,
			Location: req.Location,
			FarmName: req.FarmName,
		}
		if err := s.profileRepo.CreateFarmerProfile(profile); err != nil {
			return nil, err
		}
	default:
		profile := &models.ConsumerProfile{
			UserID:           user.ID,
			Location:         req.Location,
			HealthConditions: []string{},
		}
		if err := s.profileRepo.CreateConsumerProfile(profile); err != nil {
			return nil, err
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
