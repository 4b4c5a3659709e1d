package review

import (
	"Recipe-API/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		GetReviewByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
		FindByUsername(ctx context.Context, username string) ([]*entities.Review, error)
		SaveReview(ctx context.Context, review *entities.Review) error
		DeleteReviewByID(ctx context.Context, id uuid.UUID) error
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUsername(ctx context.Context, username string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).Where("username = ?", username).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) SaveReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) DeleteReviewByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Review{}, "id = ?", id).Error
}
