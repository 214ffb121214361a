package services

import (
	"fmt"

	"farmconnect/models"
	"farmconnect/repositories"
)

type ProfileService struct {
	profileRepo *repositories.ProfileRepository
}

func NewProfileService() *ProfileService {
	return &ProfileService{
		profileRepo: repositories.NewProfileRepository(),
	}
}

func (s *ProfileService) GetConsumerProfile(userID int) (*models.ConsumerProfile, error) {
	return s.profileRepo.GetConsumerProfileByUserID(userID)
}

func (s *ProfileService) UpdateConsumerProfile(userID int, req models.UpdateConsumerProfileRequest) (*models.ConsumerProfile, error) {
	for _, condition := range req.HealthConditions {
		if !models.IsValidHealthCondition(condition) {
			return nil, fmt.Errorf("unknown health condition: %s", condition)
		}
	}

	profile, err := s.profileRepo.GetConsumerProfileByUserID(userID)
	if err != nil {
		return nil, err
	}

	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.DietaryGoals != "" {
		profile.DietaryGoals = req.DietaryGoals
	}
	if req.HealthConditions != nil {
		profile.HealthConditions = req.HealthConditions
	}

	if err := s.profileRepo.UpdateConsumerProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetFarmerProfile(userID int) (*models.FarmerProfile, error) {
	return s.profileRepo.GetFarmerProfileByUserID(userID)
}

func (s *ProfileService) UpdateFarmerProfile(userID int, req models.UpdateFarmerProfileRequest) (*models.FarmerProfile, error) {
	profile, err := s.profileRepo.GetFarmerProfileByUserID(userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.FarmName != "" {
		profile.FarmName = req.FarmName
	}

	if err := s.profileRepo.UpdateFarmerProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
