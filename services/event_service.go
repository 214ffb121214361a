package services

import (
	"errors"
	"math"

	"farmconnect/models"
	"farmconnect/repositories"
)

type EventService struct {
	eventRepo *repositories.EventRepository
}

func NewEventService() *EventService {
	return &EventService{
		eventRepo: repositories.NewEventRepository(),
	}
}

func (s *EventService) GetAllEvents(page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	events, total, err := s.eventRepo.FindAll(page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Events retrieved successfully",
		Data:    events,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *EventService) CreateEvent(farmerID int, req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		FarmerID:    farmerID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(id, farmerID int) error {
	deleted, err := s.eventRepo.Delete(id, farmerID)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New("event not found")
	}
	return nil
}
