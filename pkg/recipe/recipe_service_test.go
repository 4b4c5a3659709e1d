package recipe

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/pkg/cache"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testBaseURL = "http://localhost:8080"

type fakeRecipeRepository struct {
	recipes map[uuid.UUID]*entities.Recipe

	createCalls int
	getCalls    int
	listCalls   int
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[uuid.UUID]*entities.Recipe)}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.createCalls++
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id uuid.UUID) (*entities.Recipe, error) {
	f.getCalls++
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetAllRecipes(_ context.Context) ([]*entities.Recipe, error) {
	f.listCalls++
	var recipes []*entities.Recipe
	for _, recipe := range f.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (f *fakeRecipeRepository) FindByNameContaining(_ context.Context, name string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	for _, recipe := range f.recipes {
		if strings.Contains(recipe.Name, name) {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

func (f *fakeRecipeRepository) FindByNameContainingAndMinRating(_ context.Context, name string, minRating int64) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	for _, recipe := range f.recipes {
		if !strings.Contains(recipe.Name, name) || len(recipe.Reviews) == 0 {
			continue
		}
		var sum int64
		for _, review := range recipe.Reviews {
			sum += int64(review.Rating)
		}
		if sum/int64(len(recipe.Reviews)) >= minRating {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

func (f *fakeRecipeRepository) SaveRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipeByID(_ context.Context, id uuid.UUID) error {
	delete(f.recipes, id)
	return nil
}

func newTestService() (RecipeService, *fakeRecipeRepository) {
	repo := newFakeRecipeRepository()
	return NewRecipeService(repo, cache.New(0, nil), testBaseURL), repo
}

func buildRecipe(name string, ratings ...int) *entities.Recipe {
	recipe := &entities.Recipe{
		Name:             name,
		DifficultyRating: 5,
		MinutesToMake:    30,
		Ingredients:      []entities.Ingredient{{Name: "flour", Amount: "2 cups"}},
		Steps:            []entities.Step{{StepNumber: 1, Description: "mix"}},
	}
	for i, rating := range ratings {
		recipe.Reviews = append(recipe.Reviews, entities.Review{
			Username: fmt.Sprintf("user%d", i),
			Rating:   rating,
		})
	}
	return recipe
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("fills derived fields", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes", 2, 3))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, created.ID)
		require.NotNil(t, created.AverageReviewScore)
		assert.Equal(t, int64(2), *created.AverageReviewScore)
		assert.Equal(t, testBaseURL+"/recipes/"+created.ID.String(), created.LocationURI)
	})

	t.Run("structural validation runs before the store", func(t *testing.T) {
		service, repo := newTestService()

		bad := buildRecipe("pancakes")
		bad.Steps = nil
		_, err := service.CreateRecipe(ctx, bad)

		var invalid *domain.InvalidStateError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.MessageRecipeNeedsParts, err.Error())
		assert.Zero(t, repo.createCalls)
	})

	t.Run("create then read by id", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		got, err := service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "pancakes", got.Name)
	})
}

func TestGetRecipeByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id yields the exact message", func(t *testing.T) {
		service, _ := newTestService()
		id := uuid.New()

		_, err := service.GetRecipeByID(ctx, id)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, fmt.Sprintf(domain.MessageNoRecipeWithID, id), err.Error())
	})

	t.Run("callers get independent copies of the cached recipe", func(t *testing.T) {
		service, _ := newTestService()
		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		first, err := service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		first.Name = "scribbled over"

		second, err := service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "pancakes", second.Name)
	})

	t.Run("concurrent cached reads do not share a struct", func(t *testing.T) {
		service, _ := newTestService()
		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes", 2, 3))
		require.NoError(t, err)

		// Warm the cache so every goroutine takes the hit path.
		_, err = service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := service.GetRecipeByID(ctx, created.ID)
				if !assert.NoError(t, err) {
					return
				}
				if assert.NotNil(t, got.AverageReviewScore) {
					assert.Equal(t, int64(2), *got.AverageReviewScore)
				}
				assert.Equal(t, testBaseURL+"/recipes/"+created.ID.String(), got.LocationURI)
			}()
		}
		wg.Wait()
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		service, repo := newTestService()
		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		_, err = service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		getCalls := repo.getCalls

		_, err = service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, getCalls, repo.getCalls)
	})
}

func TestGetAllRecipes(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields the exact message", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.GetAllRecipes(ctx)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, domain.MessageNoRecipesYet, err.Error())
	})

	t.Run("result is cached", func(t *testing.T) {
		service, repo := newTestService()
		_, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		first, err := service.GetAllRecipes(ctx)
		require.NoError(t, err)
		assert.Len(t, first, 1)
		assert.Equal(t, 1, repo.listCalls)

		second, err := service.GetAllRecipes(ctx)
		require.NoError(t, err)
		assert.Len(t, second, 1)
		assert.Equal(t, 1, repo.listCalls)
	})

	t.Run("writes leave the cached list stale", func(t *testing.T) {
		// Writes evict only the per-recipe namespace, so a cached list
		// keeps serving its old contents until its entry expires.
		service, repo := newTestService()
		_, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		before, err := service.GetAllRecipes(ctx)
		require.NoError(t, err)
		require.Len(t, before, 1)

		created, err := service.CreateRecipe(ctx, buildRecipe("waffles"))
		require.NoError(t, err)
		require.Len(t, repo.recipes, 2)

		after, err := service.GetAllRecipes(ctx)
		require.NoError(t, err)
		assert.Len(t, after, 1, "cached list must not see the new recipe")
		assert.Equal(t, 1, repo.listCalls)

		// The per-recipe read path stays fresh the whole time.
		got, err := service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "waffles", got.Name)
	})
}

func TestGetRecipesByName(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.CreateRecipe(ctx, buildRecipe("test recipe"))
	require.NoError(t, err)
	_, err = service.CreateRecipe(ctx, buildRecipe("another test recipe"))
	require.NoError(t, err)

	t.Run("substring match", func(t *testing.T) {
		recipes, err := service.GetRecipesByName(ctx, "test")
		require.NoError(t, err)
		assert.Len(t, recipes, 2)
	})

	t.Run("no match yields the exact message", func(t *testing.T) {
		_, err := service.GetRecipesByName(ctx, "zucchini")

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, domain.MessageNoRecipesByName, err.Error())
	})
}

func TestGetRecipesByNameAndRating(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.CreateRecipe(ctx, buildRecipe("good test recipe", 8, 9))
	require.NoError(t, err)
	_, err = service.CreateRecipe(ctx, buildRecipe("bad test recipe", 2, 3))
	require.NoError(t, err)

	t.Run("rating floor filters results", func(t *testing.T) {
		recipes, err := service.GetRecipesByNameAndRating(ctx, "test", 7)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "good test recipe", recipes[0].Name)
	})

	t.Run("nothing above the floor yields the exact message", func(t *testing.T) {
		_, err := service.GetRecipesByNameAndRating(ctx, "test", 10)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, domain.MessageNoRecipesByName, err.Error())
	})
}

func TestUpdateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("forced id check rejects unknown recipes", func(t *testing.T) {
		service, _ := newTestService()

		ghost := buildRecipe("ghost")
		ghost.ID = uuid.New()
		_, err := service.UpdateRecipe(ctx, ghost, true)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, domain.MessageRecipeIDNotInDB, err.Error())
	})

	t.Run("update is visible on the next read", func(t *testing.T) {
		service, _ := newTestService()
		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		// Warm the per-recipe cache first so the test proves eviction.
		_, err = service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)

		created.Name = "fluffy pancakes"
		_, err = service.UpdateRecipe(ctx, created, true)
		require.NoError(t, err)

		got, err := service.GetRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "fluffy pancakes", got.Name)
	})

	t.Run("update without id check skips the lookup", func(t *testing.T) {
		service, repo := newTestService()
		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		getCalls := repo.getCalls
		_, err = service.UpdateRecipe(ctx, created, false)
		require.NoError(t, err)
		assert.Equal(t, getCalls, repo.getCalls)
	})
}

func TestDeleteRecipeByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the deleted recipe and evicts it", func(t *testing.T) {
		service, _ := newTestService()
		created, err := service.CreateRecipe(ctx, buildRecipe("pancakes"))
		require.NoError(t, err)

		deleted, err := service.DeleteRecipeByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)

		_, err = service.GetRecipeByID(ctx, created.ID)
		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("unknown id yields the not found message with delete suffix", func(t *testing.T) {
		service, _ := newTestService()
		id := uuid.New()

		_, err := service.DeleteRecipeByID(ctx, id)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, fmt.Sprintf(domain.MessageNoRecipeWithID, id)+domain.MessageCouldNotDelete, err.Error())
	})
}
