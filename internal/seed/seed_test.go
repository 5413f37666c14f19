package seed

import (
	"strings"
	"testing"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dryRunFactory() *Factory {
	return NewFactory(nil, SeedOptions{DryRun: true, SkipBcrypt: true})
}

func TestFactory_CreateUser(t *testing.T) {
	f := dryRunFactory()

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Name)
	assert.Contains(t, user.Email, "@example.com")
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")
	assert.Equal(t, "password123", user.Password)
}

func TestFactory_CreateUserOverrides(t *testing.T) {
	f := dryRunFactory()

	user, err := f.CreateUser(func(u *models.User) {
		u.Name = "John Doe"
		u.Email = "john@example.com"
	})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestFactory_CreatePostDenormalizesAuthor(t *testing.T) {
	f := dryRunFactory()

	user, err := f.CreateUser()
	require.NoError(t, err)

	post, err := f.CreatePost(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, post.UserID)
	assert.Equal(t, user.Name, post.Name)
	assert.Equal(t, user.Avatar, post.Avatar)
	assert.NotEmpty(t, post.Text)
}

func TestRandomSkills(t *testing.T) {
	t.Parallel()

	for i := 0; i < 20; i++ {
		skills := randomSkills()
		assert.GreaterOrEqual(t, len(skills), 2)
		assert.LessOrEqual(t, len(skills), 6)

		seen := make(map[string]struct{})
		for _, s := range skills {
			_, dup := seen[s]
			assert.False(t, dup, "duplicate skill %s", s)
			seen[s] = struct{}{}
		}
	}
}

func TestRandomDate(t *testing.T) {
	t.Parallel()

	d := randomDate(30)
	require.Len(t, d, 10)
	assert.Equal(t, 2, strings.Count(d, "-"))
}

func TestClearStatements(t *testing.T) {
	t.Parallel()

	t.Run("Postgres", func(t *testing.T) {
		stmts := clearStatements("postgres")
		require.Len(t, stmts, 1)
		assert.Contains(t, stmts[0], "TRUNCATE TABLE")
		assert.Contains(t, stmts[0], "RESTART IDENTITY CASCADE")
	})

	t.Run("Sqlite Deletes Children First", func(t *testing.T) {
		stmts := clearStatements("sqlite")
		require.Len(t, stmts, 7)
		assert.Equal(t, "DELETE FROM comments;", stmts[0])
		assert.Equal(t, "DELETE FROM likes;", stmts[1])
		assert.Equal(t, "DELETE FROM posts;", stmts[2])
		assert.Equal(t, "DELETE FROM users;", stmts[len(stmts)-1])
	})
}

func TestLoadPresets(t *testing.T) {
	t.Parallel()

	presets, err := LoadPresets()
	require.NoError(t, err)
	require.NotEmpty(t, presets)

	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
		assert.Greater(t, p.Users, 0)
		assert.Greater(t, p.Posts, 0)
	}
	assert.Contains(t, names, "MegaPopulated")
}
