package handlers

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/pkg/auth"
	"Recipe-API/pkg/recipe"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipesByName(c *fiber.Ctx) error
		GetRecipesByNameAndRating(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipeByID(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{recipeService: recipeService}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(entities.Recipe)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedBodyRequest)
	}

	// Anonymous creation is allowed; an authenticated principal becomes the
	// recipe's author.
	if principal, ok := c.Locals("principal").(auth.Principal); ok {
		req.AuthorID = principal.ID
	}

	created, err := h.recipeService.CreateRecipe(c.Context(), req)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusBadRequest)
	}

	c.Set(fiber.HeaderLocation, created.LocationURI)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.ErrParseUUID.Error())
	}

	found, err := h.recipeService.GetRecipeByID(c.Context(), id)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(found)
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetAllRecipes(c.Context())
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(recipes)
}

func (h *recipeHandler) GetRecipesByName(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRecipesByName(c.Context(), c.Params("name"))
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(recipes)
}

func (h *recipeHandler) GetRecipesByNameAndRating(c *fiber.Ctx) error {
	minRating, err := strconv.ParseInt(c.Params("minimum"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	recipes, err := h.recipeService.GetRecipesByNameAndRating(c.Context(), c.Params("name"), minRating)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(recipes)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(entities.Recipe)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedBodyRequest)
	}

	updated, err := h.recipeService.UpdateRecipe(c.Context(), req, true)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(updated)
}

func (h *recipeHandler) DeleteRecipeByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.ErrParseUUID.Error())
	}

	deleted, err := h.recipeService.DeleteRecipeByID(c.Context(), id)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusBadRequest)
	}
	return c.SendString(fmt.Sprintf(domain.MessageRecipeDeleted, deleted.ID, deleted.Name))
}
