package entities

import (
	"Recipe-API/domain"
	"fmt"

	"github.com/google/uuid"
)

type Recipe struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	DifficultyRating int       `json:"difficultyRating"`
	MinutesToMake    int       `json:"minutesToMake"`
	AuthorID         uuid.UUID `gorm:"type:uuid" json:"authorId,omitempty"`

	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps       []Step       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps"`
	Reviews     []Review     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"reviews"`

	// Derived on every read, never persisted.
	AverageReviewScore *int64 `gorm:"-" json:"averageReviewScore,omitempty"`
	LocationURI        string `gorm:"-" json:"locationURI,omitempty"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
	Timestamp
}

// Validate enforces structural completeness before a recipe touches the store.
func (r *Recipe) Validate() error {
	if len(r.Ingredients) == 0 || len(r.Steps) == 0 {
		return domain.NewInvalidStateError(domain.MessageRecipeNeedsParts)
	}
	for i := range r.Reviews {
		if err := r.Reviews[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RefreshAverageReviewScore recomputes the integer-floored average rating.
// A recipe without reviews keeps the score unset.
func (r *Recipe) RefreshAverageReviewScore() {
	if len(r.Reviews) == 0 {
		return
	}
	var sum int64
	for _, review := range r.Reviews {
		sum += int64(review.Rating)
	}
	avg := sum / int64(len(r.Reviews))
	r.AverageReviewScore = &avg
}

func (r *Recipe) GenerateLocationURI(baseURL string) {
	r.LocationURI = fmt.Sprintf("%s/recipes/%s", baseURL, r.ID)
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Amount   string    `gorm:"not null" json:"amount"`
	State    string    `json:"state,omitempty"`
}

type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid" json:"-"`
	StepNumber  int       `gorm:"not null" json:"stepNumber"`
	Description string    `gorm:"not null" json:"description"`
}
