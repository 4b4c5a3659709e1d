package recipe

import (
	"Recipe-API/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		FindByNameContaining(ctx context.Context, name string) ([]*entities.Recipe, error)
		FindByNameContainingAndMinRating(ctx context.Context, name string, minRating int64) ([]*entities.Recipe, error)
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipeByID(ctx context.Context, id uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Steps").
		Preload("Reviews").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Steps").
		Preload("Reviews").
		Order("created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) FindByNameContaining(ctx context.Context, name string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Steps").
		Preload("Reviews").
		Where("name LIKE ?", "%"+name+"%").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) FindByNameContainingAndMinRating(ctx context.Context, name string, minRating int64) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Steps").
		Preload("Reviews").
		Joins("JOIN reviews ON reviews.recipe_id = recipes.id").
		Where("recipes.name LIKE ?", "%"+name+"%").
		Group("recipes.id").
		Having("AVG(reviews.rating) >= ?", minRating).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipeByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Select("Ingredients", "Steps", "Reviews").
		Delete(&entities.Recipe{ID: id}).Error
}
