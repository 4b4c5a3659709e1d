package config

import (
	"Recipe-API/internal/api/handlers"
	"Recipe-API/internal/api/routes"
	"Recipe-API/internal/middleware"
	"Recipe-API/internal/utils"
	"Recipe-API/pkg/auth"
	"Recipe-API/pkg/cache"
	"Recipe-API/pkg/jwt"
	"Recipe-API/pkg/recipe"
	"Recipe-API/pkg/review"
	"Recipe-API/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, zapLog *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Cache instance owned here, injected into the service layer. TTL is a
	// safety net only; eviction stays write-triggered.
	var cacheTTL time.Duration
	if raw := utils.GetConfig("CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cacheTTL = parsed
		}
	}
	responseCache := cache.New(cacheTTL, zapLog)

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, zapLog)
	recipeService := recipe.NewRecipeService(recipeRepository, responseCache, utils.GetConfig("APP_URL"))
	reviewService := review.NewReviewService(reviewRepository, recipeService)

	// The evaluator reads the repositories directly so decisions are never
	// served from the response cache.
	evaluator := auth.NewEvaluator(recipeRepository, reviewRepository)
	middlewares := middleware.NewMiddleware(userRepository, jwtService, evaluator, zapLog)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		ReviewHandler: reviewHandler,
		UserHandler:   userHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
