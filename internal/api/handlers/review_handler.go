package handlers

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/pkg/review"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	ReviewHandler interface {
		GetReviewByID(c *fiber.Ctx) error
		GetReviewsByRecipeID(c *fiber.Ctx) error
		GetReviewsByUsername(c *fiber.Ctx) error
		PostNewReview(c *fiber.Ctx) error
		UpdateReview(c *fiber.Ctx) error
		DeleteReviewByID(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
	}
)

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandler{reviewService: reviewService}
}

func (h *reviewHandler) GetReviewByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.ErrParseUUID.Error())
	}

	found, err := h.reviewService.GetReviewByID(c.Context(), id)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(found)
}

func (h *reviewHandler) GetReviewsByRecipeID(c *fiber.Ctx) error {
	recipeID, err := uuid.Parse(c.Params("recipeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.ErrParseUUID.Error())
	}

	reviews, err := h.reviewService.GetReviewsByRecipeID(c.Context(), recipeID)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(reviews)
}

func (h *reviewHandler) GetReviewsByUsername(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetReviewsByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(reviews)
}

func (h *reviewHandler) PostNewReview(c *fiber.Ctx) error {
	recipeID, err := uuid.Parse(c.Params("recipeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.ErrParseUUID.Error())
	}

	req := new(entities.Review)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedBodyRequest)
	}

	updatedRecipe, err := h.reviewService.PostNewReview(c.Context(), req, recipeID)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(updatedRecipe)
}

func (h *reviewHandler) UpdateReview(c *fiber.Ctx) error {
	req := new(entities.Review)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedBodyRequest)
	}

	updated, err := h.reviewService.UpdateReview(c.Context(), req)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(updated)
}

func (h *reviewHandler) DeleteReviewByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.ErrParseUUID.Error())
	}

	deleted, err := h.reviewService.DeleteReviewByID(c.Context(), id)
	if err != nil {
		return presenters.DomainError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(deleted)
}
