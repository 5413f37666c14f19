package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"devconnector/internal/cache"
	"devconnector/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProfileRepository_GetByHandle_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE handle = $1 AND "profiles"."deleted_at" IS NULL ORDER BY "profiles"."id" LIMIT $2`)).
		WithArgs("ghost", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	profile, err := repo.GetByHandle(context.Background(), "ghost")
	assert.Nil(t, profile)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "noprofile", appErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_List_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE "profiles"."deleted_at" IS NULL ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "handle"}))

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_DeleteExperience(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "experiences" WHERE profile_id = $1 AND "experiences"."id" = $2`)).
			WithArgs(3, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteExperience(ctx, 3, 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Entry", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "experiences" WHERE profile_id = $1 AND "experiences"."id" = $2`)).
			WithArgs(3, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteExperience(ctx, 3, 99)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_Update_RenameDropsOldHandleCache(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(rdb)
	t.Cleanup(func() {
		cache.SetClient(nil)
		_ = rdb.Close()
	})

	stale := models.Profile{ID: 5, UserID: 7, Handle: "johndoe", Status: "Developer"}
	require.NoError(t, cache.SetJSON(ctx, cache.ProfileHandleKey("johndoe"), stale, cache.ProfileTTL))
	require.NoError(t, cache.SetJSON(ctx, cache.ProfileUserKey(7), stale, cache.ProfileTTL))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "handle" FROM "profiles" WHERE "profiles"."id" = $1 AND "profiles"."deleted_at" IS NULL ORDER BY "profiles"."id" LIMIT $2`)).
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"handle"}).AddRow("johndoe"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "profiles" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	renamed := models.Profile{ID: 5, UserID: 7, Handle: "john-doe", Status: "Developer"}
	require.NoError(t, repo.Update(ctx, &renamed))

	// The old handle key must not keep serving the pre-rename profile.
	assert.False(t, mr.Exists(cache.ProfileHandleKey("johndoe")))
	assert.False(t, mr.Exists(cache.ProfileHandleKey("john-doe")))
	assert.False(t, mr.Exists(cache.ProfileUserKey(7)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Create_DuplicateHandle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "profiles"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_profiles_handle" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Profile{UserID: 1, Handle: "taken", Status: "Developer"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "handle", appErr.Field)
	assert.Equal(t, "That handle already exists", appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
