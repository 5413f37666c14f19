package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"devconnector/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1 AND "posts"."deleted_at" IS NULL ORDER BY "posts"."id" LIMIT $2`)).
		WithArgs(42, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	post, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, post)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "nopostfound", appErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_IsLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{"Liked", 1, true},
		{"Not Liked", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
				WithArgs(1, 2).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			liked, err := repo.IsLiked(ctx, 1, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, liked)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_Unlike_NotLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Unlike(context.Background(), 1, 2)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "notliked", appErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Like_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_likes_user_post" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	err := repo.Like(context.Background(), 1, 2)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "alreadyliked", appErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_DeleteComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments" WHERE post_id = $1 AND "comments"."id" = $2`)).
			WithArgs(5, 9).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteComment(ctx, 5, 9))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Comment", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments" WHERE post_id = $1 AND "comments"."id" = $2`)).
			WithArgs(5, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteComment(ctx, 5, 99)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.Equal(t, "commentnotexists", appErr.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
