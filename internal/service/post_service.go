package service

import (
	"context"
	"errors"

	"devconnector/internal/models"
	"devconnector/internal/repository"
)

// PostService handles posts, likes and comments.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries an already-validated post payload. Name and avatar
// are resolved server-side from the authenticated user.
type CreatePostInput struct {
	UserID uint
	Text   string
}

// CommentInput carries an already-validated comment payload.
type CommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func asAppError(err error, target **models.AppError) bool {
	return errors.As(err, target)
}

// Create stores a new post with the author's name and avatar denormalized.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Delete removes a post. Only the owner may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewFieldUnauthorizedError("notauthorized", "User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records the caller's like and returns the refreshed post.
func (s *PostService) Like(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewConflictError("alreadyliked", "User already liked this post")
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// Unlike removes the caller's like and returns the refreshed post.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// AddComment appends a comment with the caller's name and avatar denormalized
// and returns the refreshed post.
func (s *PostService) AddComment(ctx context.Context, in CommentInput) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: in.PostID,
		UserID: user.ID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// RemoveComment deletes a comment. Only the comment's author or the post's
// owner may remove it.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID && post.UserID != userID {
		return nil, models.NewFieldUnauthorizedError("notauthorized", "User not authorized")
	}

	if err := s.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
