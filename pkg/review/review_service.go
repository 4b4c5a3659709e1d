package review

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		GetReviewByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
		GetReviewsByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]entities.Review, error)
		GetReviewsByUsername(ctx context.Context, username string) ([]*entities.Review, error)
		PostNewReview(ctx context.Context, review *entities.Review, recipeID uuid.UUID) (*entities.Recipe, error)
		DeleteReviewByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
		UpdateReview(ctx context.Context, review *entities.Review) (*entities.Review, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeService    recipe.RecipeService
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeService recipe.RecipeService) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeService:    recipeService,
	}
}

func (s *reviewService) GetReviewByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.MessageNoReviewWithID, id)
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetReviewsByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]entities.Review, error) {
	r, err := s.recipeService.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if len(r.Reviews) == 0 {
		return nil, domain.NewNotFoundError(domain.MessageNoReviewsForRecipe)
	}
	return r.Reviews, nil
}

func (s *reviewService) GetReviewsByUsername(ctx context.Context, username string) ([]*entities.Review, error) {
	reviews, err := s.reviewRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, domain.NewNotFoundError(domain.MessageNoReviewsForUsername, username)
	}
	return reviews, nil
}

// PostNewReview attaches a review to a recipe and persists through the recipe
// update path. The average score is not recomputed eagerly here; the next read
// derives it.
func (s *reviewService) PostNewReview(ctx context.Context, review *entities.Review, recipeID uuid.UUID) (*entities.Recipe, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}

	r, err := s.recipeService.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	review.RecipeID = r.ID
	r.Reviews = append(r.Reviews, *review)

	// The recipe was just loaded, so no forced id re-check is needed.
	return s.recipeService.UpdateRecipe(ctx, r, false)
}

func (s *reviewService) DeleteReviewByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.NewNotFoundError(domain.MessageReviewDeleteNotExist)
		}
		return nil, err
	}

	if err := s.reviewRepository.DeleteReviewByID(ctx, id); err != nil {
		return nil, domain.NewInvalidStateError("%s", err.Error())
	}
	return review, nil
}

// UpdateReview replaces an existing review. Rating bounds are only enforced at
// construction time, not re-checked here.
func (s *reviewService) UpdateReview(ctx context.Context, review *entities.Review) (*entities.Review, error) {
	if _, err := s.GetReviewByID(ctx, review.ID); err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.NewNotFoundError(domain.MessageReviewUpdateNotExist)
		}
		return nil, err
	}

	if err := s.reviewRepository.SaveReview(ctx, review); err != nil {
		return nil, domain.NewInvalidStateError("%s", err.Error())
	}
	return review, nil
}
