package server

import (
	"devconnector/internal/models"
	"devconnector/internal/service"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AddComment appends a comment to a post and returns the updated post
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Comments share the post text rules.
	if errs := validation.ValidatePost(req.Text); !errs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	post, err := s.postService.AddComment(c.UserContext(), service.CommentInput{
		UserID: userID,
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	s.publishUserEvent(post.UserID, EventCommentCreated, post)

	return c.JSON(post)
}

// DeleteComment removes a comment. The comment author and the post owner may
// both delete it.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return nil
	}

	post, err := s.postService.RemoveComment(c.UserContext(), userID, postID, commentID)
	if err != nil {
		return writeServiceError(c, err)
	}

	s.publishUserEvent(post.UserID, EventCommentDeleted, post)

	return c.JSON(post)
}
