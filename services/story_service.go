package services

import (
	"farmconnect/models"
	"farmconnect/repositories"
)

type StoryService struct {
	storyRepo *repositories.StoryRepository
}

func NewStoryService() *StoryService {
	return &StoryService{
		storyRepo: repositories.NewStoryRepository(),
	}
}

func (s *StoryService) GetActiveStories() ([]models.Story, error) {
	return s.storyRepo.FindActive()
}

func (s *StoryService) CreateStory(farmerID int, req models.CreateStoryRequest) (*models.Story, error) {
	story := &models.Story{
		FarmerID: farmerID,
		Content:  req.Content,
		Duration: req.Duration,
		MediaURL: req.MediaURL,
	}

	if err := s.storyRepo.Create(story); err != nil {
		return nil, err
	}
	return story, nil
}
