package routes

import (
	"Recipe-API/internal/api/handlers"
	"Recipe-API/internal/middleware"
	"Recipe-API/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	ReviewHandler handlers.ReviewHandler
	UserHandler   handlers.UserHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Reviews()
	c.Users()
}

// Recipes follows the original access rules: reads and creation are public,
// delete/update need an authenticated owner or an admin.
func (c *Config) Recipes() {
	recipes := c.App.Group("/recipes")
	{
		recipes.Post("", c.Middleware.AuthMiddleware(false), c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetAllRecipes)
		recipes.Get("/search/:name/rating/:minimum", c.RecipeHandler.GetRecipesByNameAndRating)
		recipes.Get("/search/:name", c.RecipeHandler.GetRecipesByName)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
		recipes.Delete("/:id",
			c.Middleware.AuthMiddleware(true),
			c.Middleware.RequirePermission(auth.ActionDelete, auth.TargetRecipe),
			c.RecipeHandler.DeleteRecipeByID,
		)
		recipes.Patch("",
			c.Middleware.AuthMiddleware(true),
			c.Middleware.RequirePermission(auth.ActionEdit, auth.TargetRecipe),
			c.RecipeHandler.UpdateRecipe,
		)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/reviews")
	{
		reviews.Get("/recipe/:recipeId", c.ReviewHandler.GetReviewsByRecipeID)
		reviews.Get("/user/:username", c.ReviewHandler.GetReviewsByUsername)
		reviews.Get("/:id", c.ReviewHandler.GetReviewByID)
		reviews.Post("/:recipeId", c.Middleware.AuthMiddleware(false), c.ReviewHandler.PostNewReview)
		reviews.Delete("/:id",
			c.Middleware.AuthMiddleware(true),
			c.Middleware.RequirePermission(auth.ActionDelete, auth.TargetReview),
			c.ReviewHandler.DeleteReviewByID,
		)
		reviews.Patch("",
			c.Middleware.AuthMiddleware(true),
			c.Middleware.RequirePermission(auth.ActionEdit, auth.TargetReview),
			c.ReviewHandler.UpdateReview,
		)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/users")
	{
		users.Post("", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Get("/me", c.Middleware.AuthMiddleware(true), c.UserHandler.Me)
	}
}
