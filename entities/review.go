package entities

import (
	"Recipe-API/domain"

	"github.com/google/uuid"
)

type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username    string    `gorm:"not null" json:"username"`
	Rating      int       `gorm:"not null" json:"rating"`
	Description string    `json:"description,omitempty"`

	// Free-text association by recipe id; deliberately not a relational link
	// to the user table.
	RecipeID uuid.UUID `gorm:"type:uuid;column:recipe_id" json:"recipeId,omitempty"`
}

// Validate enforces the rating bounds at construction time. Later updates are
// not re-checked beyond this.
func (r *Review) Validate() error {
	if r.Rating <= 0 || r.Rating > 10 {
		return domain.NewInvalidStateError(domain.MessageRatingOutOfBounds)
	}
	return nil
}
