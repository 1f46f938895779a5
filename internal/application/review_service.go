package application

import (
	"context"
	"errors"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

type ReviewService struct {
	Reviews  repo.ReviewRepository
	Products repo.ProductRepository
	Users    repo.UserRepository
}

func NewReviewService(reviews repo.ReviewRepository, products repo.ProductRepository, users repo.UserRepository) *ReviewService {
	return &ReviewService{Reviews: reviews, Products: products, Users: users}
}

type CreateReviewInput struct {
	ProductID int64
	UserID    int64
	Rating    int
	Comment   string
}

func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*entity.Review, error) {
	if err := checkRating(in.Rating); err != nil {
		return nil, err
	}
	ok, err := s.Products.Exists(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidField("product_id", "does not reference an existing product")
	}
	if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, invalidField("user_id", "does not reference an existing user")
		}
		return nil, err
	}

	r := &entity.Review{ProductID: in.ProductID, UserID: in.UserID, Rating: in.Rating, Comment: in.Comment}
	if err := s.Reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*entity.Review, error) {
	return s.Reviews.GetByID(ctx, id)
}

// ListByProduct returns the product's reviews; no reviews reads as not found.
func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]entity.Review, error) {
	reviews, err := s.Reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, repo.ErrNotFound
	}
	return reviews, nil
}

type UpdateReviewInput struct {
	Rating  int
	Comment string
}

func (s *ReviewService) Update(ctx context.Context, id int64, in UpdateReviewInput) (*entity.Review, error) {
	if err := checkRating(in.Rating); err != nil {
		return nil, err
	}
	r, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Rating = in.Rating
	r.Comment = in.Comment
	if err := s.Reviews.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	return s.Reviews.Delete(ctx, id)
}

func checkRating(rating int) error {
	if rating < 1 || rating > 5 {
		return invalidField("rating", "must be between 1 and 5")
	}
	return nil
}
