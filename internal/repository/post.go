package repository

import (
	"context"
	"errors"

	"devconnector/internal/cache"
	"devconnector/internal/models"
	"devconnector/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts, likes and comments.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	AddComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withPostDetails preloads likes and comments, comments most-recent-first.
func withPostDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()

	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		if err := withPostDetails(r.db.WithContext(ctx)).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewFieldNotFoundError("nopostfound", "No post found with that ID")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	defer observability.TrackQuery("select", "posts")()

	var posts []models.Post
	if err := withPostDetails(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "posts")()

	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	defer observability.TrackQuery("select", "likes")()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Like inserts the like row. The unique (user_id, post_id) index backstops
// concurrent double-likes that slip past the service-level check.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	defer observability.TrackQuery("insert", "likes")()

	like := models.Like{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("alreadyliked", "User already liked this post")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	defer observability.TrackQuery("delete", "likes")()

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewConflictError("notliked", "You have not yet liked this post")
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("insert", "comments")()

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

// GetComment fetches a comment scoped to its post, bypassing the post cache so
// ownership checks never act on stale data.
func (r *postRepository) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	defer observability.TrackQuery("select", "comments")()

	var comment models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewFieldNotFoundError("commentnotexists", "Comment does not exist")
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// DeleteComment removes a comment scoped to its post. Zero affected rows means
// the comment does not exist on that post.
func (r *postRepository) DeleteComment(ctx context.Context, postID, commentID uint) error {
	defer observability.TrackQuery("delete", "comments")()

	res := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.Comment{}, commentID)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewFieldNotFoundError("commentnotexists", "Comment does not exist")
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
