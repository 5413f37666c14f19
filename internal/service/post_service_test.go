package service

import (
	"context"
	"testing"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	listFn          func(context.Context) ([]models.Post, error)
	deleteFn        func(context.Context, uint) error
	isLikedFn       func(context.Context, uint, uint) (bool, error)
	likeFn          func(context.Context, uint, uint) error
	unlikeFn        func(context.Context, uint, uint) error
	addCommentFn    func(context.Context, *models.Comment) error
	getCommentFn    func(context.Context, uint, uint) (*models.Comment, error)
	deleteCommentFn func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}
func (s *postRepoStub) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return s.getCommentFn(ctx, postID, commentID)
}
func (s *postRepoStub) DeleteComment(ctx context.Context, postID, commentID uint) error {
	return s.deleteCommentFn(ctx, postID, commentID)
}

func fixedUserRepo(user *models.User) *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			if user != nil && user.ID == id {
				return user, nil
			}
			return nil, models.NewNotFoundError("User", id)
		},
	}
}

func TestPostService_Create_DenormalizesAuthor(t *testing.T) {
	t.Parallel()
	author := &models.User{ID: 1, Name: "John Doe", Avatar: "https://www.gravatar.com/avatar/abc"}

	var created *models.Post
	posts := &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 10
			created = p
			return nil
		},
	}
	svc := NewPostService(posts, fixedUserRepo(author))

	post, err := svc.Create(context.Background(), CreatePostInput{UserID: 1, Text: "hello world, this is a post"})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "John Doe", post.Name)
	assert.Equal(t, author.Avatar, post.Avatar)
	assert.Equal(t, uint(1), post.UserID)
}

func TestPostService_Delete_OwnerOnly(t *testing.T) {
	t.Parallel()
	existing := &models.Post{ID: 10, UserID: 1}

	deleted := false
	posts := &postRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return existing, nil },
		deleteFn: func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewPostService(posts, fixedUserRepo(nil))

	t.Run("Non Owner Rejected", func(t *testing.T) {
		err := svc.Delete(context.Background(), 2, 10)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "notauthorized", appErr.Field)
		assert.False(t, deleted)
	})

	t.Run("Owner Allowed", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), 1, 10))
		assert.True(t, deleted)
	})
}

func TestPostService_Like(t *testing.T) {
	t.Parallel()
	existing := &models.Post{ID: 10, UserID: 1}

	t.Run("Already Liked", func(t *testing.T) {
		t.Parallel()
		posts := &postRepoStub{
			getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return existing, nil },
			isLikedFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		}
		svc := NewPostService(posts, fixedUserRepo(nil))

		_, err := svc.Like(context.Background(), 2, 10)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "alreadyliked", appErr.Field)
	})

	t.Run("Success", func(t *testing.T) {
		t.Parallel()
		liked := false
		posts := &postRepoStub{
			getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return existing, nil },
			isLikedFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
			likeFn: func(_ context.Context, userID, postID uint) error {
				liked = true
				assert.Equal(t, uint(2), userID)
				assert.Equal(t, uint(10), postID)
				return nil
			},
		}
		svc := NewPostService(posts, fixedUserRepo(nil))

		post, err := svc.Like(context.Background(), 2, 10)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, existing.ID, post.ID)
	})

	t.Run("Missing Post", func(t *testing.T) {
		t.Parallel()
		posts := &postRepoStub{
			getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
				return nil, models.NewFieldNotFoundError("nopostfound", "No post found with that ID")
			},
		}
		svc := NewPostService(posts, fixedUserRepo(nil))

		_, err := svc.Like(context.Background(), 2, 99)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "nopostfound", appErr.Field)
	})
}

func TestPostService_Unlike_PassesThroughNotLiked(t *testing.T) {
	t.Parallel()
	posts := &postRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 10}, nil
		},
		unlikeFn: func(_ context.Context, _, _ uint) error {
			return models.NewConflictError("notliked", "You have not yet liked this post")
		},
	}
	svc := NewPostService(posts, fixedUserRepo(nil))

	_, err := svc.Unlike(context.Background(), 2, 10)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "notliked", appErr.Field)
}

func TestPostService_AddComment_DenormalizesAuthor(t *testing.T) {
	t.Parallel()
	author := &models.User{ID: 3, Name: "Jane", Avatar: "https://www.gravatar.com/avatar/def"}

	var added *models.Comment
	posts := &postRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 10}, nil
		},
		addCommentFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 5
			added = c
			return nil
		},
	}
	svc := NewPostService(posts, fixedUserRepo(author))

	_, err := svc.AddComment(context.Background(), CommentInput{UserID: 3, PostID: 10, Text: "nice post indeed"})
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, "Jane", added.Name)
	assert.Equal(t, author.Avatar, added.Avatar)
	assert.Equal(t, uint(10), added.PostID)
}

func TestPostService_RemoveComment(t *testing.T) {
	t.Parallel()
	post := &models.Post{ID: 10, UserID: 1}
	comment := &models.Comment{ID: 5, PostID: 10, UserID: 3}

	newSvc := func(deleted *bool) *PostService {
		posts := &postRepoStub{
			getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return post, nil },
			getCommentFn: func(_ context.Context, postID, commentID uint) (*models.Comment, error) {
				if commentID == comment.ID {
					return comment, nil
				}
				return nil, models.NewFieldNotFoundError("commentnotexists", "Comment does not exist")
			},
			deleteCommentFn: func(_ context.Context, _, _ uint) error {
				*deleted = true
				return nil
			},
		}
		return NewPostService(posts, fixedUserRepo(nil))
	}

	t.Run("Author Allowed", func(t *testing.T) {
		deleted := false
		_, err := newSvc(&deleted).RemoveComment(context.Background(), 3, 10, 5)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Post Owner Allowed", func(t *testing.T) {
		deleted := false
		_, err := newSvc(&deleted).RemoveComment(context.Background(), 1, 10, 5)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Stranger Rejected", func(t *testing.T) {
		deleted := false
		_, err := newSvc(&deleted).RemoveComment(context.Background(), 9, 10, 5)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
		assert.False(t, deleted)
	})

	t.Run("Missing Comment", func(t *testing.T) {
		deleted := false
		_, err := newSvc(&deleted).RemoveComment(context.Background(), 3, 10, 99)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "commentnotexists", appErr.Field)
		assert.False(t, deleted)
	})
}
