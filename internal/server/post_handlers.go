package server

import (
	"time"

	"retrolog/internal/models"
	"retrolog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /posts (public). The full document array is returned,
// soft-deleted posts included; excluding them is a client-side rule.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(posts)
}

// GetPost handles GET /posts/:id (public): one whole document including
// embedded comments.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if post == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
	}
	return c.JSON(post)
}

// CreatePost handles POST /posts (protected): store the submitted document
// and assign the canonical id. Client-supplied timestamps are trusted like
// the generic document store the front end was built against, with only a
// fallback stamp when createdAt is omitted.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int64)

	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateTitle(post.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateContent(post.Content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateAuthor(post.Author); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	if post.UserID == 0 {
		post.UserID = models.FlexID(userID)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	if err := s.postRepo.Create(c.Context(), &post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ReplacePost handles PUT /posts/:id (protected): whole-document replace.
// There is deliberately no partial update or version check; the client's
// read-modify-write flows (soft delete, comment append) rely on exactly
// these replace semantics, races included.
func (s *Server) ReplacePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateTitle(post.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateContent(post.Content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	replaced, err := s.postRepo.Replace(c.Context(), id, &post)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if !replaced {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
	}
	return c.JSON(post)
}
