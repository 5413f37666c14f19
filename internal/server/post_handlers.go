package server

import (
	"devconnector/internal/models"
	"devconnector/internal/service"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Text string `json:"text"`
}

// GetPosts returns all posts, newest first
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewFieldNotFoundError("nopostsfound", "No posts found"))
	}
	return c.JSON(posts)
}

// GetPost returns a single post with likes and comments
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetByID(c.UserContext(), postID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(post)
}

// CreatePost stores a new post and announces it on the feed
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ValidatePost(req.Text); !errs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	post, err := s.postService.Create(c.UserContext(), service.CreatePostInput{
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	s.publishBroadcastEvent(EventPostCreated, post)

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost removes a post owned by the authenticated user
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), userID, postID); err != nil {
		return writeServiceError(c, err)
	}

	s.publishBroadcastEvent(EventPostDeleted, fiber.Map{"id": postID})

	return c.JSON(fiber.Map{"success": true})
}

// LikePost records a like and returns the updated post
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Like(c.UserContext(), userID, postID)
	if err != nil {
		return writeServiceError(c, err)
	}

	s.publishBroadcastEvent(EventPostReactionUpdated, post)

	return c.JSON(post)
}

// UnlikePost removes a like and returns the updated post
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Unlike(c.UserContext(), userID, postID)
	if err != nil {
		return writeServiceError(c, err)
	}

	s.publishBroadcastEvent(EventPostReactionUpdated, post)

	return c.JSON(post)
}
