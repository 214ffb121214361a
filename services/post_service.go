package services

import (
	"errors"

	"farmconnect/models"
	"farmconnect/repositories"
)

type PostService struct {
	postRepo    *repositories.PostRepository
	productRepo *repositories.ProductRepository
}

func NewPostService() *PostService {
	return &PostService{
		postRepo:    repositories.NewPostRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

// HasMorePosts reports whether another page exists after the given one.
func HasMorePosts(page, limit, returned, total int) bool {
	skip := (page - 1) * limit
	return skip+returned < total
}

func (s *PostService) GetPaginatedPosts(page, limit int) (*models.PaginatedPosts, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	posts, total, err := s.postRepo.FindPaginated(page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedPosts{
		Posts:   posts,
		Total:   total,
		HasMore: HasMorePosts(page, limit, len(posts), total),
	}, nil
}

func (s *PostService) CreatePost(farmerID int, req models.CreatePostRequest) (*models.Post, error) {
	if len(req.ProductIDs) > 0 {
		owned, err := s.productRepo.CountOwnedByFarmer(farmerID, req.ProductIDs)
		if err != nil {
			return nil, err
		}
		if owned != len(req.ProductIDs) {
			return nil, errors.New("attached products must belong to the posting farmer")
		}
	}

	post := &models.Post{
		FarmerID: farmerID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := s.postRepo.Create(post, req.ProductIDs); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) LikePost(id int) (*models.Post, error) {
	if _, err := s.postRepo.FindByID(id); err != nil {
		return nil, errors.New("post not found")
	}
	return s.postRepo.IncrementLikes(id)
}

func (s *PostService) DeletePost(id, farmerID int) error {
	deleted, err := s.postRepo.Delete(id, farmerID)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New("post not found")
	}
	return nil
}
