package recipe

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/pkg/cache"
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	opRecipe  = "recipe"  // get-by-id namespace, evicted on every write
	opRecipes = "recipes" // list/search namespace, deliberately left stale on writes
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipesByName(ctx context.Context, name string) ([]*entities.Recipe, error)
		GetRecipesByNameAndRating(ctx context.Context, name string, minRating int64) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, forceIDCheck bool) (*entities.Recipe, error)
		DeleteRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		cache            *cache.Cache
		baseURL          string
	}
)

func NewRecipeService(recipeRepository RecipeRepository, c *cache.Cache, baseURL string) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		cache:            c,
		baseURL:          baseURL,
	}
}

// deriveFields recomputes everything that is never stored authoritatively.
func (s *recipeService) deriveFields(recipe *entities.Recipe) {
	recipe.RefreshAverageReviewScore()
	recipe.GenerateLocationURI(s.baseURL)
}

func (s *recipeService) CreateRecipe(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, domain.NewInvalidStateError("%s", err.Error())
	}

	s.deriveFields(recipe)
	s.cache.Evict(cache.Key(opRecipe, recipe.ID.String()))
	return recipe, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	key := cache.Key(opRecipe, id.String())
	if v, ok := s.cache.Get(key); ok {
		// Hand out a copy so callers never write to the cached struct while
		// other requests are reading it.
		recipe := *v.(*entities.Recipe)
		s.deriveFields(&recipe)
		return &recipe, nil
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.MessageNoRecipeWithID, id)
		}
		return nil, err
	}

	s.deriveFields(recipe)
	cached := *recipe
	s.cache.Set(key, &cached)
	return recipe, nil
}

// GetAllRecipes is the one read path with a single-flight guarantee:
// concurrent misses collapse into a single store round trip.
func (s *recipeService) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	v, err := s.cache.Once(cache.Key(opRecipes, "all"), func() (any, error) {
		recipes, err := s.recipeRepository.GetAllRecipes(ctx)
		if err != nil {
			return nil, err
		}
		if len(recipes) == 0 {
			return nil, domain.NewNotFoundError(domain.MessageNoRecipesYet)
		}
		for _, recipe := range recipes {
			s.deriveFields(recipe)
		}
		return recipes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*entities.Recipe), nil
}

func (s *recipeService) GetRecipesByName(ctx context.Context, name string) ([]*entities.Recipe, error) {
	// Searches share the list namespace, so the literal name "all" collides
	// with the get-all entry. Faithful to the original key scheme.
	key := cache.Key(opRecipes, name)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*entities.Recipe), nil
	}

	recipes, err := s.recipeRepository.FindByNameContaining(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, domain.NewNotFoundError(domain.MessageNoRecipesByName)
	}

	for _, recipe := range recipes {
		s.deriveFields(recipe)
	}
	s.cache.Set(key, recipes)
	return recipes, nil
}

func (s *recipeService) GetRecipesByNameAndRating(ctx context.Context, name string, minRating int64) ([]*entities.Recipe, error) {
	key := cache.Key(opRecipes, name+"-"+strconv.FormatInt(minRating, 10))
	if v, ok := s.cache.Get(key); ok {
		return v.([]*entities.Recipe), nil
	}

	recipes, err := s.recipeRepository.FindByNameContainingAndMinRating(ctx, name, minRating)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, domain.NewNotFoundError(domain.MessageNoRecipesByName)
	}

	for _, recipe := range recipes {
		s.deriveFields(recipe)
	}
	s.cache.Set(key, recipes)
	return recipes, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, forceIDCheck bool) (*entities.Recipe, error) {
	if forceIDCheck {
		if _, err := s.GetRecipeByID(ctx, recipe.ID); err != nil {
			var notFound *domain.NotFoundError
			if errors.As(err, &notFound) {
				return nil, domain.NewNotFoundError(domain.MessageRecipeIDNotInDB)
			}
			return nil, err
		}
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return nil, domain.NewInvalidStateError("%s", err.Error())
	}

	s.deriveFields(recipe)
	s.cache.Evict(cache.Key(opRecipe, recipe.ID.String()))
	return recipe, nil
}

func (s *recipeService) DeleteRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	recipe, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.NewNotFoundError("%s", notFound.Message+domain.MessageCouldNotDelete)
		}
		return nil, err
	}

	if err := s.recipeRepository.DeleteRecipeByID(ctx, id); err != nil {
		return nil, domain.NewInvalidStateError("%s", err.Error())
	}

	s.cache.Evict(cache.Key(opRecipe, id.String()))
	return recipe, nil
}
