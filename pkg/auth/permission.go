package auth

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionEdit   = "edit"
	ActionDelete = "delete"

	TargetRecipe = "recipe"
	TargetReview = "review"
)

// Principal is the authenticated identity making a request, resolved once per
// request by the auth middleware.
type Principal struct {
	ID       uuid.UUID
	Username string
	Roles    []string
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type (
	RecipeFinder interface {
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
	}

	ReviewFinder interface {
		GetReviewByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
	}

	// Evaluator decides whether a principal may edit or delete a recipe or
	// review. It reads straight from the repositories; decisions are computed
	// fresh on every call and are never cached.
	Evaluator struct {
		recipes RecipeFinder
		reviews ReviewFinder
	}
)

func NewEvaluator(recipes RecipeFinder, reviews ReviewFinder) *Evaluator {
	return &Evaluator{recipes: recipes, reviews: reviews}
}

// Decide returns (allow, nil) or (deny, nil) for a well-formed request, and an
// error when the permission token is malformed or the review target is absent.
func (e *Evaluator) Decide(ctx context.Context, principal Principal, action string, targetKind string, targetID uuid.UUID) (bool, error) {
	if action != ActionEdit && action != ActionDelete {
		return false, domain.ErrInvalidPermission
	}

	if principal.HasRole(domain.RoleAdmin) {
		return true, nil
	}

	switch targetKind {
	case TargetRecipe:
		recipe, err := e.recipes.GetRecipeByID(ctx, targetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No recipe with this id exists. Let the request through so the
			// service layer can fail with its own not-found message.
			return true, nil
		}
		if err != nil {
			return false, err
		}
		return recipe.AuthorID == principal.ID, nil

	case TargetReview:
		review, err := e.reviews.GetReviewByID(ctx, targetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unlike recipes, a missing review fails here.
			return false, domain.NewNotFoundError(domain.MessageReviewAccessNotExist)
		}
		if err != nil {
			return false, err
		}
		return review.Username == principal.Username, nil
	}

	// Only the two kinds above are ever dispatched here; anything else is
	// denied outright.
	return false, nil
}
